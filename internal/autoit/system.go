package autoit

import (
	"log/slog"

	"github.com/Norgate-AV/autoitx/internal/config"
	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

// ShutdownFlag is a Shutdown code; flags may be combined
type ShutdownFlag int

const (
	ShutdownLogoff    ShutdownFlag = 0
	ShutdownPowerOff  ShutdownFlag = 1
	ShutdownReboot    ShutdownFlag = 2
	ShutdownForce     ShutdownFlag = 4
	ShutdownPowerDown ShutdownFlag = 8
	ShutdownForceHung ShutdownFlag = 16
	ShutdownStandby   ShutdownFlag = 32
	ShutdownHibernate ShutdownFlag = 64
)

// System covers engine-wide operations
type System struct {
	backend interfaces.SystemBackend
	log     logger.LoggerInterface
}

// NewSystem creates a system wrapper
func NewSystem(backend interfaces.SystemBackend, log logger.LoggerInterface) *System {
	return &System{backend: backend, log: orNoOp(log)}
}

// BlockInput disables or re-enables user mouse and keyboard input.
// Requires administrator rights; Ctrl+Alt+Del always re-enables input.
func (s *System) BlockInput(block bool) error {
	flag := 0
	if block {
		flag = 1
	}

	s.log.Debug("BlockInput", slog.Bool("block", block))

	if err := s.backend.BlockInput(flag); err != nil {
		return transportError("BlockInput", err)
	}

	return nil
}

// Shutdown logs off, reboots or powers down the machine
func (s *System) Shutdown(flag ShutdownFlag) error {
	s.log.Info("Shutdown requested", slog.Int("code", int(flag)))

	ret, err := s.backend.Shutdown(int(flag))
	return checkStatus(s.log, "Shutdown", ret, err)
}

// IsAdmin reports whether the current user has administrator rights
func (s *System) IsAdmin() (bool, error) {
	ret, err := s.backend.IsAdmin()
	if err != nil {
		return false, transportError("IsAdmin", err)
	}

	return ret == 1, nil
}

// SetOption sets an AutoItSetOption value and returns the previous one
func (s *System) SetOption(name string, value int) (int, error) {
	s.log.Trace("AutoItSetOption", slog.String("option", name), slog.Int("value", value))

	prev, err := s.backend.AutoItSetOption(name, value)
	if err != nil {
		return 0, transportError("AutoItSetOption", err)
	}

	return prev, nil
}

// ApplyOptions sets every option present in opts, in a fixed order
func (s *System) ApplyOptions(opts config.Options) error {
	for _, o := range opts.Entries() {
		if _, err := s.SetOption(o.Name, o.Value); err != nil {
			return err
		}
	}

	return nil
}
