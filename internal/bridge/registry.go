package bridge

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Command names callable from the UI.
const (
	CmdGetCliTextPath = "get_cli_text_path"
	CmdMenuFileExit   = "menu_file_exit"
	CmdMenuHelpAbout  = "menu_help_about"
)

// Handler runs a command and returns its result for the UI.
type Handler func() (any, error)

// Gate reports whether the host currently accepts calls.
type Gate interface {
	Running() bool
}

// Registry maps stable command names to handlers. It is filled during host
// construction and frozen before the UI starts, after which it is read
// without locking.
type Registry struct {
	handlers map[string]Handler
	gate     Gate
	frozen   atomic.Bool
}

// NewRegistry returns an empty registry. A nil gate always admits calls.
func NewRegistry(gate Gate) *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		gate:     gate,
	}
}

// Register adds a handler under name.
func (r *Registry) Register(name string, h Handler) error {
	if r.frozen.Load() {
		return fmt.Errorf("register %q: %w", name, ErrRegistryFrozen)
	}
	if name == "" || h == nil {
		return fmt.Errorf("register %q: empty name or nil handler", name)
	}
	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("register %q: already registered", name)
	}
	r.handlers[name] = h
	return nil
}

// Freeze rejects further registrations.
func (r *Registry) Freeze() {
	r.frozen.Store(true)
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named command. Unknown names and calls outside the
// running state fail without touching any handler.
func (r *Registry) Invoke(name string) (any, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, &CommandDispatchError{Command: name, Err: ErrUnknownCommand}
	}
	if r.gate != nil && !r.gate.Running() {
		return nil, &CommandDispatchError{Command: name, Err: ErrNotRunning}
	}
	result, err := h()
	if err != nil {
		return nil, &CommandDispatchError{Command: name, Err: err}
	}
	return result, nil
}
