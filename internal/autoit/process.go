package autoit

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Norgate-AV/autoitx/internal/interfaces"
	"github.com/Norgate-AV/autoitx/internal/logger"
	"github.com/Norgate-AV/autoitx/internal/timeouts"
)

// ShowFlag is the initial window state of a launched program
type ShowFlag int

const (
	ShowNormal ShowFlag = iota
	ShowHide
	ShowMinimize
	ShowMaximize
)

// Win32 SW_* values understood by Run
const (
	swHide       = 0
	swShowNormal = 1
	swMaximize   = 3
	swMinimize   = 6
)

var showFlagValues = map[ShowFlag]int{
	ShowNormal:   swShowNormal,
	ShowHide:     swHide,
	ShowMinimize: swMinimize,
	ShowMaximize: swMaximize,
}

var showFlagNames = map[string]ShowFlag{
	"":         ShowNormal,
	"normal":   ShowNormal,
	"hide":     ShowHide,
	"minimize": ShowMinimize,
	"maximize": ShowMaximize,
}

// ParseShowFlag maps a name (normal, hide, minimize, maximize) to a ShowFlag
func ParseShowFlag(name string) (ShowFlag, error) {
	flag, ok := showFlagNames[name]
	if !ok {
		return ShowNormal, fmt.Errorf("unknown show flag %q", name)
	}

	return flag, nil
}

// Value returns the SW_* constant for the flag; unknown flags show normally
func (f ShowFlag) Value() int {
	if v, ok := showFlagValues[f]; ok {
		return v
	}

	return swShowNormal
}

// Priority is a process priority class
type Priority int

const (
	PriorityIdle Priority = iota
	PriorityBelowNormal
	PriorityNormal
	PriorityAboveNormal
	PriorityHigh
	PriorityRealtime
)

// LogonFlag controls how RunAs logs the user on
type LogonFlag int

const (
	LogonNoProfile       LogonFlag = 0
	LogonWithProfile     LogonFlag = 1
	LogonNetworkOnly     LogonFlag = 2
	LogonInheritEnvBlock LogonFlag = 4
)

// Credentials switches the user a program is launched as
type Credentials struct {
	User      string
	Domain    string
	Password  string
	LogonFlag LogonFlag
}

// ProcessOptions configures NewProcess
type ProcessOptions struct {
	// Program is the command line to run; defaults to the process name
	Program string
	// Dir is the working directory; empty uses the current one
	Dir string
	// Show is the initial window state (default ShowNormal)
	Show ShowFlag
	// Wait blocks until the launched program exits
	Wait bool
	// RunAs launches the program as another user when set
	RunAs *Credentials
}

// Process is a running (or, in wait mode, finished) program
type Process struct {
	backend interfaces.ProcessBackend
	log     logger.LoggerInterface

	Name     string
	PID      int
	Existing bool // true when the process was already running
	ExitCode int  // set only when launched with Wait
}

// NewProcess binds to a running process called name, or launches it.
// An existing match is used without launching anything.
func NewProcess(backend interfaces.ProcessBackend, name string, opts ProcessOptions, log logger.LoggerInterface) (*Process, error) {
	log = orNoOp(log)
	p := &Process{backend: backend, log: log, Name: name}

	log.Trace("ProcessExists", slog.String("name", name))

	pid, err := backend.ProcessExists(name)
	if err != nil {
		return nil, transportError("ProcessExists", err)
	}

	if pid != 0 {
		log.Debug("Process already running", slog.String("name", name), slog.Int("pid", pid))
		p.PID = pid
		p.Existing = true
		return p, nil
	}

	program := opts.Program
	if program == "" {
		program = name
	}

	show := opts.Show.Value()
	log.Debug("Launching process",
		slog.String("program", program),
		slog.Bool("wait", opts.Wait),
		slog.Bool("runAs", opts.RunAs != nil),
		slog.Int("show", show),
	)

	ret, op, err := p.launch(program, opts.Dir, show, opts)
	if err != nil {
		return nil, transportError(op, err)
	}

	if err := checkLastError(log, backend, op); err != nil {
		return nil, err
	}

	if opts.Wait {
		p.ExitCode = ret
		return p, nil
	}

	if ret == 0 {
		return nil, &OpError{Op: op, Err: ErrFailed}
	}

	p.PID = ret
	return p, nil
}

func (p *Process) launch(program, dir string, show int, opts ProcessOptions) (int, string, error) {
	if c := opts.RunAs; c != nil {
		if opts.Wait {
			ret, err := p.backend.RunAsWait(c.User, c.Domain, c.Password, int(c.LogonFlag), program, dir, show)
			return ret, "RunAsWait", err
		}

		ret, err := p.backend.RunAs(c.User, c.Domain, c.Password, int(c.LogonFlag), program, dir, show)
		return ret, "RunAs", err
	}

	if opts.Wait {
		ret, err := p.backend.RunWait(program, dir, show)
		return ret, "RunWait", err
	}

	ret, err := p.backend.Run(program, dir, show)
	return ret, "Run", err
}

// target identifies the process to AutoIt, by PID when known
func (p *Process) target() string {
	if p.PID != 0 {
		return strconv.Itoa(p.PID)
	}

	return p.Name
}

// Exists reports whether the process is still running
func (p *Process) Exists() (bool, error) {
	pid, err := p.backend.ProcessExists(p.target())
	if err != nil {
		return false, transportError("ProcessExists", err)
	}

	return pid != 0, nil
}

// Close terminates the process
func (p *Process) Close() error {
	p.log.Trace("ProcessClose", slog.String("target", p.target()))

	ret, err := p.backend.ProcessClose(p.target())
	return checkStatus(p.log, "ProcessClose", ret, err)
}

// SetPriority changes the process priority class
func (p *Process) SetPriority(priority Priority) error {
	p.log.Trace("ProcessSetPriority", slog.String("target", p.target()), slog.Int("priority", int(priority)))

	ret, err := p.backend.ProcessSetPriority(p.target(), int(priority))
	return checkStatus(p.log, "ProcessSetPriority", ret, err)
}

// WaitClose blocks until the process exits or timeout passes.
// A zero timeout uses timeouts.ProcessWaitTimeout.
func (p *Process) WaitClose(timeout time.Duration) error {
	if timeout == 0 {
		timeout = timeouts.ProcessWaitTimeout
	}

	p.log.Trace("ProcessWaitClose", slog.String("target", p.target()), slog.Duration("timeout", timeout))

	ret, err := p.backend.ProcessWaitClose(p.target(), timeouts.Seconds(timeout))
	if err != nil {
		return transportError("ProcessWaitClose", err)
	}

	if ret == 0 {
		return &OpError{Op: "ProcessWaitClose", Err: ErrTimeout}
	}

	return nil
}

// FindProcess binds to a running process called name without launching
// anything. No match yields ErrNotFound.
func FindProcess(backend interfaces.ProcessBackend, name string, log logger.LoggerInterface) (*Process, error) {
	log = orNoOp(log)
	log.Trace("ProcessExists", slog.String("name", name))

	pid, err := backend.ProcessExists(name)
	if err != nil {
		return nil, transportError("ProcessExists", err)
	}

	if pid == 0 {
		return nil, &OpError{Op: "ProcessExists", Err: ErrNotFound}
	}

	return &Process{backend: backend, log: log, Name: name, PID: pid, Existing: true}, nil
}

// WaitForProcess blocks until a process called name exists or timeout passes.
// A zero timeout uses timeouts.ProcessWaitTimeout.
func WaitForProcess(backend interfaces.ProcessBackend, name string, timeout time.Duration, log logger.LoggerInterface) (*Process, error) {
	log = orNoOp(log)
	if timeout == 0 {
		timeout = timeouts.ProcessWaitTimeout
	}

	log.Trace("ProcessWait", slog.String("name", name), slog.Duration("timeout", timeout))

	ret, err := backend.ProcessWait(name, timeouts.Seconds(timeout))
	if err != nil {
		return nil, transportError("ProcessWait", err)
	}

	if ret == 0 {
		return nil, &OpError{Op: "ProcessWait", Err: ErrTimeout}
	}

	pid, err := backend.ProcessExists(name)
	if err != nil {
		return nil, transportError("ProcessExists", err)
	}

	return &Process{backend: backend, log: log, Name: name, PID: pid, Existing: true}, nil
}
