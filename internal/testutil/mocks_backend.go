package testutil

import (
	"github.com/Norgate-AV/autoitx/internal/interfaces"
)

// Call is one recorded backend call
type Call struct {
	Method string
	Args   []any
}

// MockBackend implements interfaces.Backend and records every call except LastError.
// Int-returning methods return 1 unless configured; string methods return "".
type MockBackend struct {
	Calls []Call

	Statuses   map[string]int
	Strings    map[string]string
	ErrorCodes map[string]int
	Errors     map[string]error

	ProcessPID   int
	RunResult    int
	MouseX       int
	MouseY       int
	Cursor       int
	PixelColours []int
	Checksums    []int64
	SearchX      int
	SearchY      int
	EnumNames    []string
	OptionValues map[string]int
	Closed       bool

	lastError   int
	colourIndex int
	sumIndex    int
}

var _ interfaces.Backend = (*MockBackend)(nil)

func NewMockBackend() *MockBackend {
	return &MockBackend{
		Calls:        []Call{},
		Statuses:     map[string]int{},
		Strings:      map[string]string{},
		ErrorCodes:   map[string]int{},
		Errors:       map[string]error{},
		OptionValues: map[string]int{},
	}
}

// Helper methods for fluent configuration
func (m *MockBackend) WithStatus(method string, ret int) *MockBackend {
	m.Statuses[method] = ret
	return m
}

func (m *MockBackend) WithString(method, value string) *MockBackend {
	m.Strings[method] = value
	return m
}

// WithErrorCode makes method set @error to code
func (m *MockBackend) WithErrorCode(method string, code int) *MockBackend {
	m.ErrorCodes[method] = code
	return m
}

// WithError makes method fail at the transport level
func (m *MockBackend) WithError(method string, err error) *MockBackend {
	m.Errors[method] = err
	return m
}

func (m *MockBackend) WithProcessPID(pid int) *MockBackend {
	m.ProcessPID = pid
	return m
}

func (m *MockBackend) WithRunResult(ret int) *MockBackend {
	m.RunResult = ret
	return m
}

func (m *MockBackend) WithMousePos(x, y int) *MockBackend {
	m.MouseX, m.MouseY = x, y
	return m
}

// WithPixelColours sets successive PixelGetColor results; the last one repeats
func (m *MockBackend) WithPixelColours(colours ...int) *MockBackend {
	m.PixelColours = colours
	m.colourIndex = 0
	return m
}

// WithChecksums sets successive PixelChecksum results; the last one repeats
func (m *MockBackend) WithChecksums(sums ...int64) *MockBackend {
	m.Checksums = sums
	m.sumIndex = 0
	return m
}

func (m *MockBackend) WithSearchResult(x, y int) *MockBackend {
	m.SearchX, m.SearchY = x, y
	return m
}

// WithEnumNames sets RegEnumKey/RegEnumVal results by instance.
// Instances past the end return "" with @error -1.
func (m *MockBackend) WithEnumNames(names ...string) *MockBackend {
	m.EnumNames = names
	return m
}

// CallsTo returns the recorded calls to method, in order
func (m *MockBackend) CallsTo(method string) []Call {
	var calls []Call
	for _, c := range m.Calls {
		if c.Method == method {
			calls = append(calls, c)
		}
	}

	return calls
}

// Methods returns the recorded method names, in order
func (m *MockBackend) Methods() []string {
	names := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		names[i] = c.Method
	}

	return names
}

func (m *MockBackend) record(method string, args ...any) error {
	m.Calls = append(m.Calls, Call{Method: method, Args: args})
	m.lastError = m.ErrorCodes[method]
	return m.Errors[method]
}

func (m *MockBackend) status(method string) int {
	if v, ok := m.Statuses[method]; ok {
		return v
	}

	return 1
}

func (m *MockBackend) intCall(method string, args ...any) (int, error) {
	if err := m.record(method, args...); err != nil {
		return 0, err
	}

	return m.status(method), nil
}

func (m *MockBackend) stringCall(method string, args ...any) (string, error) {
	if err := m.record(method, args...); err != nil {
		return "", err
	}

	return m.Strings[method], nil
}

func (m *MockBackend) LastError() (int, error) {
	return m.lastError, nil
}

func (m *MockBackend) Close() error {
	m.Closed = true
	return nil
}

func (m *MockBackend) ClipGet() (string, error)         { return m.stringCall("ClipGet") }
func (m *MockBackend) ClipPut(text string) (int, error) { return m.intCall("ClipPut", text) }

func (m *MockBackend) IniRead(filename, section, key, def string) (string, error) {
	if err := m.record("IniRead", filename, section, key, def); err != nil {
		return "", err
	}

	if v, ok := m.Strings["IniRead"]; ok {
		return v, nil
	}

	return def, nil
}

func (m *MockBackend) IniWrite(filename, section, key, value string) (int, error) {
	return m.intCall("IniWrite", filename, section, key, value)
}

func (m *MockBackend) IniDeleteSection(filename, section string) (int, error) {
	return m.intCall("IniDeleteSection", filename, section)
}

func (m *MockBackend) IniDeleteKey(filename, section, key string) (int, error) {
	return m.intCall("IniDeleteKey", filename, section, key)
}

func (m *MockBackend) PixelGetColor(x, y int) (int, error) {
	if err := m.record("PixelGetColor", x, y); err != nil {
		return 0, err
	}

	if len(m.PixelColours) == 0 {
		return 0, nil
	}

	c := m.PixelColours[min(m.colourIndex, len(m.PixelColours)-1)]
	m.colourIndex++
	return c, nil
}

func (m *MockBackend) PixelChecksum(left, top, right, bottom, step int) (int64, error) {
	if err := m.record("PixelChecksum", left, top, right, bottom, step); err != nil {
		return 0, err
	}

	if len(m.Checksums) == 0 {
		return 0, nil
	}

	s := m.Checksums[min(m.sumIndex, len(m.Checksums)-1)]
	m.sumIndex++
	return s, nil
}

func (m *MockBackend) PixelSearch(left, top, right, bottom, colour, shade, step int) (int, int, error) {
	if err := m.record("PixelSearch", left, top, right, bottom, colour, shade, step); err != nil {
		return 0, 0, err
	}

	return m.SearchX, m.SearchY, nil
}

func (m *MockBackend) Send(keys string, flag int) error {
	return m.record("Send", keys, flag)
}

func (m *MockBackend) ToolTip(text string, x, y int) error {
	return m.record("ToolTip", text, x, y)
}

func (m *MockBackend) MouseClick(button string, x, y, clicks, speed int) (int, error) {
	return m.intCall("MouseClick", button, x, y, clicks, speed)
}

func (m *MockBackend) MouseClickDrag(button string, x1, y1, x2, y2, speed int) (int, error) {
	return m.intCall("MouseClickDrag", button, x1, y1, x2, y2, speed)
}

func (m *MockBackend) MouseDown(button string) error { return m.record("MouseDown", button) }
func (m *MockBackend) MouseUp(button string) error   { return m.record("MouseUp", button) }

func (m *MockBackend) MouseMove(x, y, speed int) (int, error) {
	return m.intCall("MouseMove", x, y, speed)
}

func (m *MockBackend) MouseWheel(direction string, clicks int) error {
	return m.record("MouseWheel", direction, clicks)
}

func (m *MockBackend) MouseGetPosX() (int, error) {
	if err := m.record("MouseGetPosX"); err != nil {
		return 0, err
	}

	return m.MouseX, nil
}

func (m *MockBackend) MouseGetPosY() (int, error) {
	if err := m.record("MouseGetPosY"); err != nil {
		return 0, err
	}

	return m.MouseY, nil
}

func (m *MockBackend) MouseGetCursor() (int, error) {
	if err := m.record("MouseGetCursor"); err != nil {
		return 0, err
	}

	return m.Cursor, nil
}

func (m *MockBackend) ProcessExists(name string) (int, error) {
	if err := m.record("ProcessExists", name); err != nil {
		return 0, err
	}

	return m.ProcessPID, nil
}

func (m *MockBackend) ProcessClose(name string) (int, error) {
	return m.intCall("ProcessClose", name)
}

func (m *MockBackend) ProcessSetPriority(name string, priority int) (int, error) {
	return m.intCall("ProcessSetPriority", name, priority)
}

func (m *MockBackend) ProcessWait(name string, timeout int) (int, error) {
	return m.intCall("ProcessWait", name, timeout)
}

func (m *MockBackend) ProcessWaitClose(name string, timeout int) (int, error) {
	return m.intCall("ProcessWaitClose", name, timeout)
}

func (m *MockBackend) runCall(method string, args ...any) (int, error) {
	if err := m.record(method, args...); err != nil {
		return 0, err
	}

	return m.RunResult, nil
}

func (m *MockBackend) Run(program, dir string, show int) (int, error) {
	return m.runCall("Run", program, dir, show)
}

func (m *MockBackend) RunWait(program, dir string, show int) (int, error) {
	return m.runCall("RunWait", program, dir, show)
}

func (m *MockBackend) RunAs(user, domain, password string, logonFlag int, program, dir string, show int) (int, error) {
	return m.runCall("RunAs", user, domain, password, logonFlag, program, dir, show)
}

func (m *MockBackend) RunAsWait(user, domain, password string, logonFlag int, program, dir string, show int) (int, error) {
	return m.runCall("RunAsWait", user, domain, password, logonFlag, program, dir, show)
}

func (m *MockBackend) RegRead(key, value string) (string, error) {
	return m.stringCall("RegRead", key, value)
}

func (m *MockBackend) RegWrite(key, value, typ, data string) (int, error) {
	return m.intCall("RegWrite", key, value, typ, data)
}

func (m *MockBackend) RegDeleteKey(key string) (int, error) {
	return m.intCall("RegDeleteKey", key)
}

func (m *MockBackend) RegDeleteVal(key, value string) (int, error) {
	return m.intCall("RegDeleteVal", key, value)
}

func (m *MockBackend) enumCall(method, key string, instance int) (string, error) {
	if err := m.record(method, key, instance); err != nil {
		return "", err
	}

	if instance < 0 || instance >= len(m.EnumNames) {
		m.lastError = -1
		return "", nil
	}

	return m.EnumNames[instance], nil
}

func (m *MockBackend) RegEnumKey(key string, instance int) (string, error) {
	return m.enumCall("RegEnumKey", key, instance)
}

func (m *MockBackend) RegEnumVal(key string, instance int) (string, error) {
	return m.enumCall("RegEnumVal", key, instance)
}

func (m *MockBackend) WinExists(title, text string) (int, error) {
	return m.intCall("WinExists", title, text)
}

func (m *MockBackend) WinActivate(title, text string) error {
	return m.record("WinActivate", title, text)
}

func (m *MockBackend) WinClose(title, text string) (int, error) {
	return m.intCall("WinClose", title, text)
}

func (m *MockBackend) WinWait(title, text string, timeout int) (int, error) {
	return m.intCall("WinWait", title, text, timeout)
}

func (m *MockBackend) WinGetHandle(title, text string) (string, error) {
	return m.stringCall("WinGetHandle", title, text)
}

func (m *MockBackend) WinGetTitle(title, text string) (string, error) {
	return m.stringCall("WinGetTitle", title, text)
}

func (m *MockBackend) ControlClick(title, text, control, button string, clicks int) (int, error) {
	return m.intCall("ControlClick", title, text, control, button, clicks)
}

func (m *MockBackend) ControlSend(title, text, control, keys string, flag int) (int, error) {
	return m.intCall("ControlSend", title, text, control, keys, flag)
}

func (m *MockBackend) ControlSetText(title, text, control, value string) (int, error) {
	return m.intCall("ControlSetText", title, text, control, value)
}

func (m *MockBackend) ControlGetText(title, text, control string) (string, error) {
	return m.stringCall("ControlGetText", title, text, control)
}

func (m *MockBackend) DriveMapAdd(device, share string, flags int, user, password string) (string, error) {
	if err := m.record("DriveMapAdd", device, share, flags, user, password); err != nil {
		return "", err
	}

	if v, ok := m.Strings["DriveMapAdd"]; ok {
		return v, nil
	}

	return "1", nil
}

func (m *MockBackend) DriveMapDel(device string) (int, error) {
	return m.intCall("DriveMapDel", device)
}

func (m *MockBackend) DriveMapGet(device string) (string, error) {
	return m.stringCall("DriveMapGet", device)
}

func (m *MockBackend) BlockInput(flag int) error { return m.record("BlockInput", flag) }

func (m *MockBackend) Shutdown(code int) (int, error) { return m.intCall("Shutdown", code) }

func (m *MockBackend) IsAdmin() (int, error) { return m.intCall("IsAdmin") }

// AutoItSetOption returns the previously stored value for option (0 at first)
func (m *MockBackend) AutoItSetOption(option string, value int) (int, error) {
	if err := m.record("AutoItSetOption", option, value); err != nil {
		return 0, err
	}

	prev := m.OptionValues[option]
	m.OptionValues[option] = value
	return prev, nil
}
