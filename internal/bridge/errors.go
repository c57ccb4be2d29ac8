package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned for a command name that was never registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotRunning is returned when the host is not accepting calls.
	ErrNotRunning = errors.New("host is not running")
	// ErrPathNotCaptured is returned by get_cli_text_path before the command
	// line has been parsed.
	ErrPathNotCaptured = errors.New("command line path not captured")
	// ErrDetached is returned by the runtime before the Wails context is attached.
	ErrDetached = errors.New("runtime not attached")
	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("command registry is frozen")
)

// CommandDispatchError is returned to the UI when a command call fails.
type CommandDispatchError struct {
	Command string
	Err     error
}

func (e *CommandDispatchError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *CommandDispatchError) Unwrap() error {
	return e.Err
}

// BridgeDeliveryError reports a menu activation that could not be broadcast.
type BridgeDeliveryError struct {
	ID  string
	Err error
}

func (e *BridgeDeliveryError) Error() string {
	return fmt.Sprintf("deliver %q on %s: %v", e.ID, Channel, e.Err)
}

func (e *BridgeDeliveryError) Unwrap() error {
	return e.Err
}

// DialogPresentationError reports a dialog the host could not show.
type DialogPresentationError struct {
	Title string
	Err   error
}

func (e *DialogPresentationError) Error() string {
	return fmt.Sprintf("show dialog %q: %v", e.Title, e.Err)
}

func (e *DialogPresentationError) Unwrap() error {
	return e.Err
}

// FormatError renders errors for the UI. It is installed as the Wails
// ErrorFormatter so a rejected promise carries a machine-readable kind.
func FormatError(err error) any {
	if err == nil {
		return nil
	}

	out := map[string]string{
		"kind":    "error",
		"message": err.Error(),
	}

	var dispatchErr *CommandDispatchError
	if errors.As(err, &dispatchErr) {
		out["kind"] = "command_dispatch"
		out["command"] = dispatchErr.Command
		switch {
		case errors.Is(err, ErrUnknownCommand):
			out["reason"] = "unknown_command"
		case errors.Is(err, ErrNotRunning):
			out["reason"] = "not_running"
		case errors.Is(err, ErrPathNotCaptured):
			out["reason"] = "path_not_captured"
		}
	}
	return out
}
