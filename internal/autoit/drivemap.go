package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// DriveMapFlag modifies DriveMap.Add
type DriveMapFlag int

const (
	DriveMapPersistent     DriveMapFlag = 1 // restore the mapping at next logon
	DriveMapShowAuthDialog DriveMapFlag = 8 // prompt for credentials when needed
	DriveMapUseCurrentUser DriveMapFlag = 16
)

// AnyDevice asks DriveMap.Add to pick the next free drive letter
const AnyDevice = "*"

// DriveMapOptions configures DriveMap.Add
type DriveMapOptions struct {
	Flags    DriveMapFlag
	User     string // empty uses the current user
	Password string
}

// DriveMap maps and unmaps network drives
type DriveMap struct {
	backend interfaces.DriveMapBackend
	log     logger.LoggerInterface
}

// NewDriveMap creates a drive mapping wrapper
func NewDriveMap(backend interfaces.DriveMapBackend, log logger.LoggerInterface) *DriveMap {
	return &DriveMap{backend: backend, log: orNoOp(log)}
}

// Add maps share (\\server\share) to device ("X:", "LPT1:" or AnyDevice)
// and returns the device that was assigned
func (d *DriveMap) Add(device, share string, opts DriveMapOptions) (string, error) {
	d.log.Trace("DriveMapAdd", slog.String("device", device), slog.String("share", share))

	ret, err := d.backend.DriveMapAdd(device, share, int(opts.Flags), opts.User, opts.Password)
	if err != nil {
		return "", transportError("DriveMapAdd", err)
	}

	if err := checkLastError(d.log, d.backend, "DriveMapAdd"); err != nil {
		return "", err
	}

	if ret == "0" || ret == "" {
		return "", &OpError{Op: "DriveMapAdd", Err: ErrFailed}
	}

	// A fixed device returns 1 rather than the device name
	if device != AnyDevice {
		return device, nil
	}

	return ret, nil
}

// Get returns the share mapped to device
func (d *DriveMap) Get(device string) (string, error) {
	d.log.Trace("DriveMapGet", slog.String("device", device))

	share, err := d.backend.DriveMapGet(device)
	if err != nil {
		return "", transportError("DriveMapGet", err)
	}

	if err := checkLastError(d.log, d.backend, "DriveMapGet", 1); err != nil {
		return "", err
	}

	return share, nil
}

// Delete removes the mapping for device
func (d *DriveMap) Delete(device string) error {
	d.log.Trace("DriveMapDel", slog.String("device", device))

	ret, err := d.backend.DriveMapDel(device)
	return checkStatus(d.log, "DriveMapDel", ret, err)
}
