package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/dftrans/internal/constants"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP transport shared by every resource client.
// It sends GET requests with an Accept: application/json header and maps
// non-2xx statuses and network failures onto the dftrans error types.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	userAgent    string
	logger       Logger
	debug        bool
	interceptors *dftrans.InterceptorChain
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds a single request, including reading the body.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithRequestInterceptors appends request interceptors.
func WithRequestInterceptors(interceptors ...dftrans.RequestInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range interceptors {
			c.interceptors.AddRequestInterceptor(interceptor)
		}
	}
}

// WithResponseInterceptors appends response interceptors.
func WithResponseInterceptors(interceptors ...dftrans.ResponseInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range interceptors {
			c.interceptors.AddResponseInterceptor(interceptor)
		}
	}
}

// NewClient creates a new HTTP client for baseURL.
//
// Requests are attempted exactly once: the service is read-only and callers
// own their retry policy.
func NewClient(baseURL string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		interceptors: dftrans.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	retryClient.RequestLogHook = client.logRequest
	retryClient.ResponseLogHook = client.logResponse

	return client
}

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// BuildPath joins path segments, escaping each one so a "/" inside a
// segment is sent as %2F instead of splitting the path.
func BuildPath(segments ...string) string {
	var builder strings.Builder

	for _, segment := range segments {
		builder.WriteByte('/')
		builder.WriteString(url.PathEscape(segment))
	}

	return builder.String()
}

// Do performs an HTTP request.
//
// When the server answers with a non-2xx status, the Response is returned
// together with a *dftrans.HTTPStatusError (or *dftrans.NotFoundError).
// Network failures return a nil Response and a *dftrans.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	intercepted := &dftrans.Request{
		Method:  method,
		Path:    req.Path,
		Headers: make(http.Header),
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.buildRequest(ctx, method, req.Path, req.Query, intercepted.Headers)
	if err != nil {
		return nil, err
	}

	resp, body, err := c.send(httpReq, method, req.Path)

	observed := &dftrans.Response{Error: err}
	if resp != nil {
		observed.StatusCode = resp.StatusCode
		observed.Headers = resp.Headers
		observed.Body = body
	}

	interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, observed)
	if err == nil && interceptErr != nil {
		err = interceptErr
	}

	return resp, err
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// BaseURL returns the origin requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildRequest(ctx context.Context, method, path string, query url.Values, headers http.Header) (*retryablehttp.Request, error) {
	target, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("%w: building URL for %s: %w", dftrans.ErrInvalidArgument, path, err)
	}

	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

func (c *Client) send(httpReq *retryablehttp.Request, method, path string) (*Response, []byte, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		return nil, nil, &dftrans.TransportError{Method: method, Path: path, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, nil, &dftrans.TransportError{Method: method, Path: path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < constants.HTTPStatusOK || httpResp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return resp, body, dftrans.NewStatusError(httpResp.StatusCode, method, path, body)
	}

	return resp, body, nil
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status_code": resp.StatusCode,
		"url":         resp.Request.URL.String(),
	})
}

// leveledLogger adapts Logger to retryablehttp.LeveledLogger. Debug lines are
// dropped: requests and responses are logged by the hooks when debug is on.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keyValueFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keyValueFields(keysAndValues))
}

func (l *leveledLogger) Debug(string, ...interface{}) {}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keyValueFields(keysAndValues))
}

func keyValueFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for index := 0; index+1 < len(keysAndValues); index += 2 {
		fields[fmt.Sprint(keysAndValues[index])] = keysAndValues[index+1]
	}

	return fields
}

func noRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}
