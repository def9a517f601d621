//go:build windows

package com

import (
	"errors"
	"fmt"
	"log/slog"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/Norgate-AV/autoitx/internal/autoit"
	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

// sFalse is returned by CoInitializeEx when COM is already initialised on the thread
const sFalse = 1

// DispatchBackend drives AutoItX3.Control through IDispatch
type DispatchBackend struct {
	log     logger.LoggerInterface
	progID  string
	apt     *apartment
	unknown *ole.IUnknown
	disp    *ole.IDispatch
}

var _ interfaces.Backend = (*DispatchBackend)(nil)

// Open creates the AutoItX3 COM object
func Open(log logger.LoggerInterface, opts Options) (interfaces.Backend, error) {
	b, err := NewDispatchBackend(log, opts)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// NewDispatchBackend starts the COM thread and creates the AutoItX3 object on it.
// Any failure is reported as autoit.ErrBackendUnavailable.
func NewDispatchBackend(log logger.LoggerInterface, opts Options) (*DispatchBackend, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	b := &DispatchBackend{log: log, progID: opts.progID()}

	apt, err := startApartment(b.setup, b.teardown, timeouts.ApartmentStartTimeout)
	if err != nil {
		log.Error("Could not create AutoItX3 object", slog.String("progID", b.progID), slog.Any("error", err))
		return nil, fmt.Errorf("%w: %s: %v", autoit.ErrBackendUnavailable, b.progID, err)
	}

	b.apt = apt
	log.Debug("AutoItX3 backend ready", slog.String("progID", b.progID))

	return b, nil
}

func (b *DispatchBackend) setup() error {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
	}

	unknown, err := oleutil.CreateObject(b.progID)
	if err != nil {
		ole.CoUninitialize()
		return fmt.Errorf("CreateObject: %w", err)
	}

	disp, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		ole.CoUninitialize()
		return fmt.Errorf("QueryInterface(IDispatch): %w", err)
	}

	b.unknown = unknown
	b.disp = disp
	return nil
}

func (b *DispatchBackend) teardown() {
	if b.disp != nil {
		b.disp.Release()
		b.disp = nil
	}

	if b.unknown != nil {
		b.unknown.Release()
		b.unknown = nil
	}

	ole.CoUninitialize()
}

// Close releases the COM object and stops the COM thread
func (b *DispatchBackend) Close() error {
	b.log.Debug("Releasing AutoItX3 backend")
	b.apt.stop()
	return nil
}

// invoke calls a method and decodes the result into a Go value.
// Arrays come back as []any.
func (b *DispatchBackend) invoke(get bool, name string, params ...any) (any, error) {
	var result any
	var callErr error

	err := b.apt.do(func() {
		var v *ole.VARIANT
		if get {
			v, callErr = oleutil.GetProperty(b.disp, name, params...)
		} else {
			v, callErr = oleutil.CallMethod(b.disp, name, params...)
		}

		if callErr != nil {
			return
		}
		defer v.Clear()

		if v.VT&ole.VT_ARRAY != 0 {
			if arr := v.ToArray(); arr != nil {
				result = arr.ToValueArray()
			}
			return
		}

		result = v.Value()
	})
	if err != nil {
		return nil, err
	}

	if callErr != nil {
		return nil, fmt.Errorf("%s: %w", name, callErr)
	}

	return result, nil
}

func (b *DispatchBackend) call(name string, params ...any) error {
	_, err := b.invoke(false, name, params...)
	return err
}

func (b *DispatchBackend) callInt(name string, params ...any) (int, error) {
	v, err := b.invoke(false, name, params...)
	if err != nil {
		return 0, err
	}

	return toInt(v)
}

func (b *DispatchBackend) callString(name string, params ...any) (string, error) {
	v, err := b.invoke(false, name, params...)
	if err != nil {
		return "", err
	}

	return toString(v), nil
}

// LastError reads the @error property
func (b *DispatchBackend) LastError() (int, error) {
	v, err := b.invoke(true, "error")
	if err != nil {
		return 0, err
	}

	return toInt(v)
}

func (b *DispatchBackend) ClipGet() (string, error) { return b.callString("ClipGet") }
func (b *DispatchBackend) ClipPut(text string) (int, error) {
	return b.callInt("ClipPut", text)
}

func (b *DispatchBackend) IniRead(filename, section, key, def string) (string, error) {
	return b.callString("IniRead", filename, section, key, def)
}

func (b *DispatchBackend) IniWrite(filename, section, key, value string) (int, error) {
	return b.callInt("IniWrite", filename, section, key, value)
}

func (b *DispatchBackend) IniDeleteSection(filename, section string) (int, error) {
	return b.callInt("IniDelete", filename, section)
}

func (b *DispatchBackend) IniDeleteKey(filename, section, key string) (int, error) {
	return b.callInt("IniDelete", filename, section, key)
}

func (b *DispatchBackend) PixelGetColor(x, y int) (int, error) {
	return b.callInt("PixelGetColor", x, y)
}

func (b *DispatchBackend) PixelChecksum(left, top, right, bottom, step int) (int64, error) {
	v, err := b.invoke(false, "PixelChecksum", left, top, right, bottom, step)
	if err != nil {
		return 0, err
	}

	return toInt64(v)
}

func (b *DispatchBackend) PixelSearch(left, top, right, bottom, colour, shade, step int) (int, int, error) {
	v, err := b.invoke(false, "PixelSearch", left, top, right, bottom, colour, shade, step)
	if err != nil {
		return 0, 0, err
	}

	// A miss is a scalar result with @error set, read separately by the caller
	x, y, _, err := toPoint(v)
	return x, y, err
}

func (b *DispatchBackend) Send(keys string, flag int) error {
	return b.call("Send", keys, flag)
}

func (b *DispatchBackend) ToolTip(text string, x, y int) error {
	return b.call("ToolTip", text, x, y)
}

func (b *DispatchBackend) MouseClick(button string, x, y, clicks, speed int) (int, error) {
	return b.callInt("MouseClick", button, x, y, clicks, speed)
}

func (b *DispatchBackend) MouseClickDrag(button string, x1, y1, x2, y2, speed int) (int, error) {
	return b.callInt("MouseClickDrag", button, x1, y1, x2, y2, speed)
}

func (b *DispatchBackend) MouseDown(button string) error { return b.call("MouseDown", button) }
func (b *DispatchBackend) MouseUp(button string) error   { return b.call("MouseUp", button) }

func (b *DispatchBackend) MouseMove(x, y, speed int) (int, error) {
	return b.callInt("MouseMove", x, y, speed)
}

func (b *DispatchBackend) MouseWheel(direction string, clicks int) error {
	return b.call("MouseWheel", direction, clicks)
}

func (b *DispatchBackend) MouseGetPosX() (int, error)   { return b.callInt("MouseGetPosX") }
func (b *DispatchBackend) MouseGetPosY() (int, error)   { return b.callInt("MouseGetPosY") }
func (b *DispatchBackend) MouseGetCursor() (int, error) { return b.callInt("MouseGetCursor") }

func (b *DispatchBackend) ProcessExists(name string) (int, error) {
	return b.callInt("ProcessExists", name)
}

func (b *DispatchBackend) ProcessClose(name string) (int, error) {
	return b.callInt("ProcessClose", name)
}

func (b *DispatchBackend) ProcessSetPriority(name string, priority int) (int, error) {
	return b.callInt("ProcessSetPriority", name, priority)
}

func (b *DispatchBackend) ProcessWait(name string, timeout int) (int, error) {
	return b.callInt("ProcessWait", name, timeout)
}

func (b *DispatchBackend) ProcessWaitClose(name string, timeout int) (int, error) {
	return b.callInt("ProcessWaitClose", name, timeout)
}

func (b *DispatchBackend) Run(program, dir string, show int) (int, error) {
	return b.callInt("Run", program, dir, show)
}

func (b *DispatchBackend) RunWait(program, dir string, show int) (int, error) {
	return b.callInt("RunWait", program, dir, show)
}

func (b *DispatchBackend) RunAs(user, domain, password string, logonFlag int, program, dir string, show int) (int, error) {
	return b.callInt("RunAs", user, domain, password, logonFlag, program, dir, show)
}

func (b *DispatchBackend) RunAsWait(user, domain, password string, logonFlag int, program, dir string, show int) (int, error) {
	return b.callInt("RunAsWait", user, domain, password, logonFlag, program, dir, show)
}

func (b *DispatchBackend) RegRead(key, value string) (string, error) {
	return b.callString("RegRead", key, value)
}

func (b *DispatchBackend) RegWrite(key, value, typ, data string) (int, error) {
	return b.callInt("RegWrite", key, value, typ, data)
}

func (b *DispatchBackend) RegDeleteKey(key string) (int, error) {
	return b.callInt("RegDeleteKey", key)
}

func (b *DispatchBackend) RegDeleteVal(key, value string) (int, error) {
	return b.callInt("RegDeleteVal", key, value)
}

func (b *DispatchBackend) RegEnumKey(key string, instance int) (string, error) {
	return b.callString("RegEnumKey", key, instance)
}

func (b *DispatchBackend) RegEnumVal(key string, instance int) (string, error) {
	return b.callString("RegEnumVal", key, instance)
}

func (b *DispatchBackend) WinExists(title, text string) (int, error) {
	return b.callInt("WinExists", title, text)
}

func (b *DispatchBackend) WinActivate(title, text string) error {
	return b.call("WinActivate", title, text)
}

func (b *DispatchBackend) WinClose(title, text string) (int, error) {
	return b.callInt("WinClose", title, text)
}

func (b *DispatchBackend) WinWait(title, text string, timeout int) (int, error) {
	return b.callInt("WinWait", title, text, timeout)
}

func (b *DispatchBackend) WinGetHandle(title, text string) (string, error) {
	return b.callString("WinGetHandle", title, text)
}

func (b *DispatchBackend) WinGetTitle(title, text string) (string, error) {
	return b.callString("WinGetTitle", title, text)
}

func (b *DispatchBackend) ControlClick(title, text, control, button string, clicks int) (int, error) {
	return b.callInt("ControlClick", title, text, control, button, clicks)
}

func (b *DispatchBackend) ControlSend(title, text, control, keys string, flag int) (int, error) {
	return b.callInt("ControlSend", title, text, control, keys, flag)
}

func (b *DispatchBackend) ControlSetText(title, text, control, value string) (int, error) {
	return b.callInt("ControlSetText", title, text, control, value)
}

func (b *DispatchBackend) ControlGetText(title, text, control string) (string, error) {
	return b.callString("ControlGetText", title, text, control)
}

func (b *DispatchBackend) DriveMapAdd(device, share string, flags int, user, password string) (string, error) {
	return b.callString("DriveMapAdd", device, share, flags, user, password)
}

func (b *DispatchBackend) DriveMapDel(device string) (int, error) {
	return b.callInt("DriveMapDel", device)
}

func (b *DispatchBackend) DriveMapGet(device string) (string, error) {
	return b.callString("DriveMapGet", device)
}

func (b *DispatchBackend) BlockInput(flag int) error { return b.call("BlockInput", flag) }

func (b *DispatchBackend) Shutdown(code int) (int, error) { return b.callInt("Shutdown", code) }

func (b *DispatchBackend) IsAdmin() (int, error) { return b.callInt("IsAdmin") }

func (b *DispatchBackend) AutoItSetOption(option string, value int) (int, error) {
	return b.callInt("AutoItSetOption", option, value)
}
