package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ErrEmptyContent is returned when there is nothing to decode into a
// non-string type.
var ErrEmptyContent = errors.New("empty content")

// ParseStringAs parses content into T.
//
// Strings are returned as-is. Booleans and numbers are converted with
// strconv. Everything else is decoded as JSON with json.Number preserved for
// interface-typed fields, so integer literals survive without float rounding.
// When strict decoding fails the content is repaired with jsonrepair and
// decoded again.
//
// Example:
//
//	type Input struct {
//	    A  any    `json:"a"`
//	    Op string `json:"op"`
//	}
//
//	in, err := ParseStringAs[Input](`{a: 2, op: '**'}`) // repaired
//	n, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()
	trimmed := strings.TrimSpace(content)

	switch target.Kind() {
	case reflect.String:
		target.SetString(content)
		return result, nil

	case reflect.Bool:
		v, err := strconv.ParseBool(trimmed)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		target.SetBool(v)
		return result, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(trimmed, 10, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		target.SetInt(v)
		return result, nil

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(trimmed, target.Type().Bits())
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		target.SetFloat(v)
		return result, nil
	}

	if trimmed == "" {
		return result, ErrEmptyContent
	}

	err := decode(trimmed, &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(trimmed)
	if repairErr != nil {
		return result, fmt.Errorf("failed to decode content as %T and failed to repair JSON: decode error: %w, repair error: %v", result, err, repairErr)
	}

	var retry T
	if err := decode(repaired, &retry); err != nil {
		return result, fmt.Errorf("failed to decode repaired JSON as %T: %w (repaired: %s)", result, err, repaired)
	}
	return retry, nil
}

// decode unmarshals exactly one JSON value from content into out.
func decode(content string, out any) error {
	decoder := json.NewDecoder(strings.NewReader(content))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	// Anything after the first value means the input was not a single document.
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected data after JSON value at offset %d", decoder.InputOffset())
	}
	return nil
}

// Compact returns content re-encoded without insignificant whitespace, or
// content unchanged when it is not valid JSON. Useful for log attributes.
func Compact(content string) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(content)); err != nil {
		return content
	}
	return buf.String()
}
