// Package console reports console control events (Ctrl+C, window close,
// logoff, shutdown) so the CLI can release input blocks and tooltips before exiting.
package console

// Event is a console control event type
type Event uint32

const (
	CtrlC        Event = 0
	CtrlBreak    Event = 1
	CtrlClose    Event = 2
	CtrlLogoff   Event = 5
	CtrlShutdown Event = 6
)

func (e Event) String() string {
	switch e {
	case CtrlC:
		return "CTRL_C"
	case CtrlBreak:
		return "CTRL_BREAK"
	case CtrlClose:
		return "CTRL_CLOSE"
	case CtrlLogoff:
		return "CTRL_LOGOFF"
	case CtrlShutdown:
		return "CTRL_SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}

// Handler receives console events. Returning true marks the event handled.
type Handler func(Event) bool
