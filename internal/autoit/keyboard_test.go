package autoit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/testutil"
)

func TestKeyboard_SendEachArgInOrder(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	kb := autoit.NewKeyboard(mock, nil)

	require.NoError(t, kb.Send("^a", 42, "{ENTER}"))

	calls := mock.CallsTo("Send")
	require.Len(t, calls, 3)
	assert.Equal(t, []any{"^a", 0}, calls[0].Args)
	assert.Equal(t, []any{"42", 0}, calls[1].Args)
	assert.Equal(t, []any{"{ENTER}", 0}, calls[2].Args)
}

func TestKeyboard_SendRaw(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	require.NoError(t, autoit.NewKeyboard(mock, nil).SendRaw("{not special}"))

	assert.Equal(t, []any{"{not special}", 1}, mock.Calls[0].Args)
}

func TestKeyboard_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithError("Send", errors.New("dispatch failed"))
	err := autoit.NewKeyboard(mock, nil).Send("a", "b")

	assert.Error(t, err)
	assert.Len(t, mock.CallsTo("Send"), 1)
}
