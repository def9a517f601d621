package autoit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/testutil"
)

const testShare = `\\fileserver\projects`

func TestDriveMap_AddFixedDevice(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend()
	device, err := autoit.NewDriveMap(mock, nil).Add("X:", testShare, autoit.DriveMapOptions{
		Flags: autoit.DriveMapPersistent,
		User:  `CORP\svc`,
	})
	require.NoError(t, err)

	assert.Equal(t, "X:", device)
	assert.Equal(t, []any{"X:", testShare, 1, `CORP\svc`, ""}, mock.Calls[0].Args)
}

func TestDriveMap_AddAnyDevice(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithString("DriveMapAdd", "Z:")
	device, err := autoit.NewDriveMap(mock, nil).Add(autoit.AnyDevice, testShare, autoit.DriveMapOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Z:", device)
}

func TestDriveMap_AddFailure(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithString("DriveMapAdd", "0").WithErrorCode("DriveMapAdd", 2)
	_, err := autoit.NewDriveMap(mock, nil).Add("X:", testShare, autoit.DriveMapOptions{})

	var opErr *autoit.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 2, opErr.Code)
	assert.ErrorIs(t, err, autoit.ErrFailed)
}

func TestDriveMap_GetAndDelete(t *testing.T) {
	t.Parallel()

	mock := testutil.NewMockBackend().WithString("DriveMapGet", testShare)
	dm := autoit.NewDriveMap(mock, nil)

	share, err := dm.Get("X:")
	require.NoError(t, err)
	assert.Equal(t, testShare, share)

	require.NoError(t, dm.Delete("X:"))

	mock.WithStatus("DriveMapDel", 0)
	assert.ErrorIs(t, dm.Delete("Y:"), autoit.ErrFailed)

	mock.WithErrorCode("DriveMapGet", 1)
	_, err = dm.Get("Q:")
	assert.ErrorIs(t, err, autoit.ErrNotFound)
}
