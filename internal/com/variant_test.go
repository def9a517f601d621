package com

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{"empty variant", nil, 0, false},
		{"VT_I4", int32(42), 42, false},
		{"VT_I8", int64(1 << 40), 1 << 40, false},
		{"VT_UI4", uint32(7), 7, false},
		{"VT_R8 checksum", float64(3735928559), 3735928559, false},
		{"VT_BOOL true", true, 1, false},
		{"VT_BOOL false", false, 0, false},
		{"numeric string", " 1234 ", 1234, false},
		{"float string", "12.0", 12, false},
		{"empty string", "", 0, false},
		{"text", "abc", 0, true},
		{"unsupported type", struct{}{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toInt64(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", toString(nil))
	assert.Equal(t, "hello", toString("hello"))
	assert.Equal(t, "5", toString(int32(5)))
}

func TestToPoint(t *testing.T) {
	x, y, ok, err := toPoint([]any{int32(10), int32(20)})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	// PixelSearch reports a miss as the scalar 1
	_, _, ok, err = toPoint(int32(1))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, _, err = toPoint([]any{int32(1)})
	assert.Error(t, err)
}

func TestOptionsProgID(t *testing.T) {
	assert.Equal(t, "AutoItX3.Control", Options{}.progID())
	assert.Equal(t, "AutoItX3_x64.Control", Options{ProgID: "AutoItX3_x64.Control"}.progID())
}
