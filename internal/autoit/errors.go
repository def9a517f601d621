package autoit

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
)

var (
	// ErrBackendUnavailable implies the AutoItX3 COM server could not be created or no backend was given.
	ErrBackendUnavailable = errors.New("AutoItX3 is not installed properly")

	// ErrNotFound implies the backend reported that the requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFailed implies the backend returned its failure status.
	ErrFailed = errors.New("backend reported failure")

	// ErrTimeout implies a wait ran out before the condition was met.
	ErrTimeout = errors.New("timed out")

	// ErrFileNotFound implies a file the wrapper needs does not exist.
	ErrFileNotFound = errors.New("file does not exist")
)

// OpError records a failed backend call. Code holds the AutoIt status or
// @error value when there is one.
type OpError struct {
	Op   string
	Code int
	Err  error
}

func (e *OpError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s: %v (code %d)", e.Op, e.Err, e.Code)
	}

	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// transportError wraps a dispatch-level failure
func transportError(op string, err error) error {
	return &OpError{Op: op, Err: err}
}

// checkStatus turns an AutoIt 1/0 return into an error
func checkStatus(log logger.LoggerInterface, op string, ret int, err error) error {
	if err != nil {
		log.Debug("Backend call failed", slog.String("op", op), slog.Any("error", err))
		return transportError(op, err)
	}

	if ret == 0 {
		log.Debug("Backend reported failure", slog.String("op", op))
		return &OpError{Op: op, Err: ErrFailed}
	}

	return nil
}

// checkLastError reads @error after op. Codes listed in notFound map to
// ErrNotFound, any other non-zero code maps to ErrFailed.
func checkLastError(log logger.LoggerInterface, r interfaces.ErrorReporter, op string, notFound ...int) error {
	code, err := r.LastError()
	if err != nil {
		return transportError(op, err)
	}

	if code == 0 {
		return nil
	}

	log.Debug("Backend set @error", slog.String("op", op), slog.Int("code", code))

	if slices.Contains(notFound, code) {
		return &OpError{Op: op, Code: code, Err: ErrNotFound}
	}

	return &OpError{Op: op, Code: code, Err: ErrFailed}
}

func orNoOp(log logger.LoggerInterface) logger.LoggerInterface {
	if log == nil {
		return logger.NewNoOpLogger()
	}

	return log
}
