package autoit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/testutil"
)

const testKey = `HKEY_CURRENT_USER\Software\autoitx`

func TestRegistry_Read(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithString("RegRead", "42")
	data, err := autoit.NewRegistry(mock, nil).Read(testKey, "Answer")
	require.NoError(t, err)

	assert.Equal(t, "42", data)
	assert.Equal(t, []any{testKey, "Answer"}, mock.Calls[0].Args)
}

func TestRegistry_ReadMissing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code int
		want error
	}{
		{"missing key", 1, autoit.ErrNotFound},
		{"missing value", -1, autoit.ErrNotFound},
		{"unsupported type", -2, autoit.ErrFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := testutil.NewMockBackend().WithErrorCode("RegRead", tt.code)
			_, err := autoit.NewRegistry(mock, nil).Read(testKey, "Nope")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistry_Write(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	require.NoError(t, autoit.NewRegistry(mock, nil).Write(testKey, "Count", autoit.RegDWord, "7"))
	assert.Equal(t, []any{testKey, "Count", "REG_DWORD", "7"}, mock.Calls[0].Args)

	mock.WithStatus("RegWrite", 0)
	assert.ErrorIs(t, autoit.NewRegistry(mock, nil).Write(testKey, "Count", autoit.RegDWord, "7"), autoit.ErrFailed)
}

func TestRegistry_Delete(t *testing.T) {
	t.Parallel()

	t.Run("empty value deletes key", func(t *testing.T) {
		t.Parallel()

		mock := testutil.NewMockBackend()
		require.NoError(t, autoit.NewRegistry(mock, nil).Delete(testKey, ""))
		assert.Equal(t, []string{"RegDeleteKey"}, mock.Methods())
	})

	t.Run("named value deletes value", func(t *testing.T) {
		t.Parallel()

		mock := testutil.NewMockBackend()
		require.NoError(t, autoit.NewRegistry(mock, nil).Delete(testKey, "Count"))
		assert.Equal(t, []string{"RegDeleteVal"}, mock.Methods())
		assert.Equal(t, []any{testKey, "Count"}, mock.Calls[0].Args)
	})
}

func TestRegistry_DeleteStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ret  int
		want error
	}{
		{"deleted", 1, nil},
		{"absent", 0, autoit.ErrNotFound},
		{"failed", 2, autoit.ErrFailed},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := testutil.NewMockBackend().WithStatus("RegDeleteKey", tt.ret)
			err := autoit.NewRegistry(mock, nil).DeleteKey(testKey)

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRegistry_KeysMakesExactlyCountCalls(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithEnumNames("Alpha", "Beta")

	entries, err := autoit.NewRegistry(mock, nil).Keys(testKey, 3)
	require.NoError(t, err)

	calls := mock.CallsTo("RegEnumKey")
	require.Len(t, calls, 3)
	for i, c := range calls {
		assert.Equal(t, []any{testKey, i}, c.Args)
	}

	require.Len(t, entries, 3)
	assert.Equal(t, "Alpha", entries[0].Name)
	assert.Equal(t, "Beta", entries[1].Name)
	assert.NoError(t, entries[0].Err)
	assert.ErrorIs(t, entries[2].Err, autoit.ErrNotFound)

	assert.Equal(t, []string{"Alpha", "Beta"}, autoit.Names(entries))
}

func TestRegistry_ValuesZeroCount(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()

	entries, err := autoit.NewRegistry(mock, nil).Values(testKey, 0)
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.Empty(t, mock.Calls)
}

func TestRegistry_Values(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithEnumNames("", "Path")

	entries, err := autoit.NewRegistry(mock, nil).Values(testKey, 2)
	require.NoError(t, err)

	assert.Len(t, mock.CallsTo("RegEnumVal"), 2)
	assert.Equal(t, 1, entries[1].Index)
	assert.Equal(t, "Path", entries[1].Name)
}
