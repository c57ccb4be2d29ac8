// Package bridge connects the native host to the web UI.
//
// Two directions exist. The UI calls commands by stable name through the
// bound Commands object; the host broadcasts menu activations to the UI on
// the back-to-front channel. Both go through the Runtime interface so the
// bridge can run without a live Wails window.
package bridge

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Runtime is the subset of the Wails runtime the bridge needs.
type Runtime interface {
	EventsEmit(name string, data ...interface{}) error
	MessageDialog(opts runtime.MessageDialogOptions) (string, error)
	Quit() error
}

// WailsRuntime forwards to the Wails runtime once the startup context is
// attached. Calls made before Attach fail with ErrDetached instead of
// reaching Wails, which aborts the process on a context it does not own.
type WailsRuntime struct {
	mu  sync.RWMutex
	ctx context.Context
}

// NewWailsRuntime returns a detached runtime.
func NewWailsRuntime() *WailsRuntime {
	return &WailsRuntime{}
}

// Attach stores the context Wails passes to OnStartup.
func (r *WailsRuntime) Attach(ctx context.Context) {
	r.mu.Lock()
	r.ctx = ctx
	r.mu.Unlock()
}

// Detach drops the context; later calls fail with ErrDetached.
func (r *WailsRuntime) Detach() {
	r.mu.Lock()
	r.ctx = nil
	r.mu.Unlock()
}

func (r *WailsRuntime) current() (context.Context, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.ctx == nil {
		return nil, ErrDetached
	}
	return r.ctx, nil
}

// Context returns the attached context, if any.
func (r *WailsRuntime) Context() (context.Context, bool) {
	ctx, err := r.current()
	return ctx, err == nil
}

func (r *WailsRuntime) EventsEmit(name string, data ...interface{}) error {
	ctx, err := r.current()
	if err != nil {
		return err
	}
	runtime.EventsEmit(ctx, name, data...)
	return nil
}

func (r *WailsRuntime) MessageDialog(opts runtime.MessageDialogOptions) (string, error) {
	ctx, err := r.current()
	if err != nil {
		return "", err
	}
	return runtime.MessageDialog(ctx, opts)
}

func (r *WailsRuntime) Quit() error {
	ctx, err := r.current()
	if err != nil {
		return err
	}
	runtime.Quit(ctx)
	return nil
}

// MainWindowLabel identifies the single editor window.
const MainWindowLabel = "main"

// Window is the window a command was invoked from.
type Window interface {
	Label() string
	Close() error
}

type mainWindow struct {
	rt Runtime
}

// NewMainWindow returns the main window handle. Wails v2 owns exactly one
// window, so closing it quits the application.
func NewMainWindow(rt Runtime) Window {
	return &mainWindow{rt: rt}
}

func (w *mainWindow) Label() string {
	return MainWindowLabel
}

func (w *mainWindow) Close() error {
	return w.rt.Quit()
}
