package com

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversions from the Go values go-ole decodes VARIANT results into.
// AutoItX3 returns numbers as VT_I4 or VT_R8 and occasionally as numeric
// strings, so all of them are accepted.

func toInt(v any) (int, error) {
	n, err := toInt64(v)
	return int(n), err
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}

		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}

		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("non-numeric result %q", n)
		}

		return int64(f), nil
	}

	return 0, fmt.Errorf("unexpected %T result", v)
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// toPoint decodes PixelSearch's [x, y] array. Anything else (AutoIt returns
// a scalar 1 on a miss) yields ok false.
func toPoint(v any) (x, y int, ok bool, err error) {
	vals, isArray := v.([]any)
	if !isArray {
		return 0, 0, false, nil
	}

	if len(vals) < 2 {
		return 0, 0, false, fmt.Errorf("expected 2 coordinates, got %d", len(vals))
	}

	if x, err = toInt(vals[0]); err != nil {
		return 0, 0, false, err
	}

	if y, err = toInt(vals[1]); err != nil {
		return 0, 0, false, err
	}

	return x, y, true, nil
}
