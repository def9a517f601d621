package autoit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/config"
	"github.com/Norgate-AV/autoitx/internal/testutil"
)

func intPtr(v int) *int { return &v }

func TestSystem_BlockInput(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	sys := autoit.NewSystem(mock, nil)

	require.NoError(t, sys.BlockInput(true))
	require.NoError(t, sys.BlockInput(false))

	calls := mock.CallsTo("BlockInput")
	assert.Equal(t, []any{1}, calls[0].Args)
	assert.Equal(t, []any{0}, calls[1].Args)
}

func TestSystem_Shutdown(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	require.NoError(t, autoit.NewSystem(mock, nil).Shutdown(autoit.ShutdownReboot|autoit.ShutdownForce))

	assert.Equal(t, []any{6}, mock.Calls[0].Args)
}

func TestSystem_IsAdmin(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithStatus("IsAdmin", 0)
	admin, err := autoit.NewSystem(mock, nil).IsAdmin()
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestSystem_SetOptionReturnsPrevious(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	sys := autoit.NewSystem(mock, nil)

	prev, err := sys.SetOption("SendKeyDelay", 20)
	require.NoError(t, err)
	assert.Zero(t, prev)

	prev, err = sys.SetOption("SendKeyDelay", 50)
	require.NoError(t, err)
	assert.Equal(t, 20, prev)
}

func TestSystem_ApplyOptions(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	opts := config.Options{
		WinTitleMatchMode: intPtr(2),
		SendKeyDelay:      intPtr(15),
		MouseCoordMode:    intPtr(0),
	}

	require.NoError(t, autoit.NewSystem(mock, nil).ApplyOptions(opts))

	calls := mock.CallsTo("AutoItSetOption")
	require.Len(t, calls, 3)
	assert.Equal(t, []any{"SendKeyDelay", 15}, calls[0].Args)
	assert.Equal(t, []any{"MouseCoordMode", 0}, calls[1].Args)
	assert.Equal(t, []any{"WinTitleMatchMode", 2}, calls[2].Args)
}

func TestSystem_ApplyOptionsEmpty(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	require.NoError(t, autoit.NewSystem(mock, nil).ApplyOptions(config.Options{}))
	assert.Empty(t, mock.Calls)
}
