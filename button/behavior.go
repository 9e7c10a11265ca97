package button

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnknownMode is returned if a Mode cannot be parsed.
var ErrUnknownMode = ierrors.New("unknown button mode")

// Mode describes how a Button reacts to a tap while its task is running.
type Mode int

const (
	// ModeBlocking ignores taps while the task is running (the button is disabled).
	ModeBlocking Mode = iota
	// ModeCancellable cancels the running task on a tap.
	ModeCancellable
	// ModeRestart cancels the running task and starts it again on a tap.
	ModeRestart
)

// String returns the name of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeBlocking:
		return "blocking"
	case ModeCancellable:
		return "cancellable"
	case ModeRestart:
		return "restart"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the name of a Mode (case-insensitive).
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blocking":
		return ModeBlocking, nil
	case "cancellable", "cancelable":
		return ModeCancellable, nil
	case "restart":
		return ModeRestart, nil
	default:
		return 0, ierrors.Wrapf(ErrUnknownMode, "%q", name)
	}
}

// Behavior describes how a Button behaves when tapped and whether it shows a placeholder while its task is running.
type Behavior struct {
	Mode            Mode
	ShowPlaceholder bool
}

// DefaultBehavior blocks further taps and shows a placeholder while the task is running.
var DefaultBehavior = Blocking(true)

// Blocking returns a Behavior that disables the button while the task is running.
func Blocking(showPlaceholder bool) Behavior {
	return Behavior{Mode: ModeBlocking, ShowPlaceholder: showPlaceholder}
}

// Cancellable returns a Behavior that cancels the running task when the button is tapped again.
func Cancellable(showPlaceholder bool) Behavior {
	return Behavior{Mode: ModeCancellable, ShowPlaceholder: showPlaceholder}
}

// Restart returns a Behavior that cancels and restarts the running task when the button is tapped again.
func Restart(showPlaceholder bool) Behavior {
	return Behavior{Mode: ModeRestart, ShowPlaceholder: showPlaceholder}
}

// IsBlocking returns true if the Behavior ignores taps while the task is running.
func (b Behavior) IsBlocking() bool {
	return b.Mode == ModeBlocking
}

// String returns a human-readable version of the Behavior.
func (b Behavior) String() string {
	return fmt.Sprintf("%s(showPlaceholder=%t)", b.Mode, b.ShowPlaceholder)
}
