package autoit

import (
	"time"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// Session shares one backend handle between wrappers
type Session struct {
	backend interfaces.Backend
	log     logger.LoggerInterface
}

// NewSession wraps backend. A nil backend yields ErrBackendUnavailable.
func NewSession(backend interfaces.Backend, log logger.LoggerInterface) (*Session, error) {
	if backend == nil {
		return nil, ErrBackendUnavailable
	}

	return &Session{backend: backend, log: orNoOp(log)}, nil
}

// Backend returns the shared handle
func (s *Session) Backend() interfaces.Backend {
	return s.backend
}

// Close releases the backend
func (s *Session) Close() error {
	return s.backend.Close()
}

func (s *Session) Clipboard() *Clipboard { return NewClipboard(s.backend, s.log) }
func (s *Session) Keyboard() *Keyboard   { return NewKeyboard(s.backend, s.log) }
func (s *Session) Mouse() *Mouse         { return NewMouse(s.backend, s.log) }
func (s *Session) Registry() *Registry   { return NewRegistry(s.backend, s.log) }
func (s *Session) DriveMap() *DriveMap   { return NewDriveMap(s.backend, s.log) }
func (s *Session) System() *System       { return NewSystem(s.backend, s.log) }

func (s *Session) Ini(filename string) (*Ini, error) {
	return NewIni(s.backend, filename, s.log)
}

func (s *Session) Pixel(x, y int) (*Pixel, error) {
	return NewPixel(s.backend, x, y, s.log)
}

func (s *Session) PixelArea(rect Rect, step int) (*PixelArea, error) {
	return NewPixelArea(s.backend, rect, step, s.log)
}

func (s *Session) ToolTip(text string, opts ToolTipOptions) (*ToolTip, error) {
	return NewToolTip(s.backend, text, opts, s.log)
}

func (s *Session) Process(name string, opts ProcessOptions) (*Process, error) {
	return NewProcess(s.backend, name, opts, s.log)
}

func (s *Session) FindProcess(name string) (*Process, error) {
	return FindProcess(s.backend, name, s.log)
}

func (s *Session) WaitForProcess(name string, timeout time.Duration) (*Process, error) {
	return WaitForProcess(s.backend, name, timeout, s.log)
}

func (s *Session) Window(title, text string) *Window {
	return NewWindow(s.backend, title, text, s.log)
}
