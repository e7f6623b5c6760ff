package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/dftrans/internal/http"
	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// geometryKind is the shape every feature of a collection must carry.
type geometryKind int

const (
	pointGeometry geometryKind = iota
	lineGeometry
)

func isNullBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodeObject parses a single JSON object and validates it.
func decodeObject[T any](path string, resp *http.Response) (*T, error) {
	if isNullBody(resp.Body) {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: dftrans.ErrEmptyBody}
	}

	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: err}
	}

	err = validate.Struct(result)
	if err != nil {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: err}
	}

	return &result, nil
}

// decodeList parses a JSON array and validates every element.
// A null body is an empty result, never a nil slice.
func decodeList[T any](path string, resp *http.Response) ([]T, error) {
	if isNullBody(resp.Body) {
		return []T{}, nil
	}

	var result []T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: err}
	}

	for index, item := range result {
		err = validate.Struct(item)
		if err != nil {
			return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: fmt.Errorf("item %d: %w", index, err)}
		}
	}

	if result == nil {
		result = []T{}
	}

	return result, nil
}

// decodeFeatures parses a feature collection and checks every geometry has
// the expected shape with exactly two in-range coordinates per position.
func decodeFeatures[P any](path string, resp *http.Response, kind geometryKind) (*dftrans.FeatureCollection[P], error) {
	var collection dftrans.FeatureCollection[P]

	err := json.Unmarshal(resp.Body, &collection)
	if err != nil {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: err}
	}

	if collection.Type != "FeatureCollection" && collection.Features == nil {
		return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: dftrans.ErrNotFeatureCollection}
	}

	if collection.Features == nil {
		collection.Features = []dftrans.Feature[P]{}
	}

	for index, feature := range collection.Features {
		err = checkGeometry(feature.Geometry, kind)
		if err == nil {
			err = validate.Struct(feature.Properties)
		}

		if err != nil {
			return nil, &dftrans.DecodeError{Path: path, Body: resp.Body, Err: fmt.Errorf("feature %d: %w", index, err)}
		}
	}

	return &collection, nil
}

func checkGeometry(geometry dftrans.Geometry, kind geometryKind) error {
	switch kind {
	case pointGeometry:
		if geometry.Type != "" && geometry.Type != dftrans.GeometryPoint {
			return fmt.Errorf("%w: got %q", dftrans.ErrNotPointGeometry, geometry.Type)
		}

		_, err := geometry.Point()

		return err
	case lineGeometry:
		if geometry.Type != "" && geometry.Type != dftrans.GeometryLineString && geometry.Type != dftrans.GeometryMultiLineString {
			return fmt.Errorf("%w: got %q", dftrans.ErrNotLineGeometry, geometry.Type)
		}

		_, err := geometry.Line()

		return err
	default:
		return nil
	}
}
