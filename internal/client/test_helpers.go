package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&dftrans.Config{BaseURL: baseURL})
	require.NoError(t, err)

	return client
}

// NewJSONServer serves body with statusCode and asserts every request is a
// GET for expectedPath in its escaped form.
func NewJSONServer(t *testing.T, expectedPath string, statusCode int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.EscapedPath())
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "application/json", request.Header.Get("Accept"))

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// TestGetOperation represents a generic lookup test case.
type TestGetOperation[TArg, TResponse any] struct {
	Name         string
	Arg          TArg
	ExpectedPath string
	StatusCode   int
	Body         string
	WantErr      bool
	ErrMessage   string
	Check        func(t *testing.T, result TResponse)
}

// RunGetTests runs a series of lookup tests against a canned server.
func RunGetTests[TArg, TResponse any](
	t *testing.T,
	tests []TestGetOperation[TArg, TResponse],
	getFunc func(*Client) func(context.Context, TArg) (TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		testCase := testCase // per-iteration copy for pre-1.22 loop semantics

		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			statusCode := testCase.StatusCode
			if statusCode == 0 {
				statusCode = http.StatusOK
			}

			server := NewJSONServer(t, testCase.ExpectedPath, statusCode, testCase.Body)
			client := NewTestClient(t, server.URL)

			result, err := getFunc(client)(context.Background(), testCase.Arg)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				return
			}

			require.NoError(t, err)

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}
