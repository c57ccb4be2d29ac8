package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"notepad0/internal/bridge"
	"notepad0/internal/buildinfo"
	"notepad0/internal/config"
	"notepad0/internal/logging"
	"notepad0/internal/menubar"
	"notepad0/internal/textpath"
)

// UntitledLabel is shown in the title bar until the UI opens a file.
const UntitledLabel = "無題"

// InitializationError reports a failure before the event loop starts.
type InitializationError struct {
	Step string
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Step, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Params are the inputs of New.
type Params struct {
	Config config.Config
	Info   buildinfo.Info
	Path   *textpath.Cell
	Log    zerolog.Logger
}

// App struct
type App struct {
	cfg      config.Config
	info     buildinfo.Info
	base     zerolog.Logger
	log      zerolog.Logger
	state    lifecycle
	runtime  *bridge.WailsRuntime
	tasks    *Tasks
	commands *bridge.Commands
	events   *bridge.EventBridge
	menu     *menu.Menu
}

// New wires the command registry, the menu and the event bridge. The path
// cell must already be published.
func New(p Params) (*App, error) {
	if p.Path == nil || !p.Path.IsSet() {
		return nil, &InitializationError{Step: "command line", Err: bridge.ErrPathNotCaptured}
	}

	a := &App{
		cfg:     p.Config,
		info:    p.Info,
		base:    p.Log,
		log:     logging.Component(p.Log, "host"),
		runtime: bridge.NewWailsRuntime(),
	}
	a.tasks = NewTasks(logging.Component(p.Log, "tasks"))

	bridgeLog := logging.Component(p.Log, "bridge")
	commands, err := bridge.NewCommands(bridge.Deps{
		Path:    p.Path,
		Window:  bridge.NewMainWindow(a.runtime),
		Runtime: a.runtime,
		Info:    p.Info,
		Tasks:   a.tasks,
		Gate:    a,
		Log:     bridgeLog,
	})
	if err != nil {
		return nil, &InitializationError{Step: "commands", Err: err}
	}
	a.commands = commands

	a.events = bridge.NewEventBridge(a.runtime, a, bridgeLog, nil)

	model := menubar.Default()
	if err := model.Validate(); err != nil {
		return nil, &InitializationError{Step: "menu", Err: err}
	}
	a.menu = menubar.Build(model, a.events.Activate)

	return a, nil
}

// State returns the current lifecycle phase.
func (a *App) State() State {
	return a.state.Load()
}

// Running reports whether commands and menu activations are accepted.
func (a *App) Running() bool {
	return a.State() == StateRunning
}

// Commands returns the object bound into the UI.
func (a *App) Commands() *bridge.Commands {
	return a.commands
}

// Title returns the initial window title.
func (a *App) Title() string {
	return UntitledLabel + " - " + a.info.Name
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.runtime.Attach(ctx)
	if a.state.advance(StateRunning) {
		a.log.Info().Str("window", bridge.MainWindowLabel).Msg("host running")
	}
}

// BeforeClose stops accepting calls. It never vetoes the close.
func (a *App) BeforeClose(ctx context.Context) bool {
	if a.state.advance(StateTerminating) {
		a.log.Info().Msg("main window closing")
	}
	return false
}

// Shutdown drains pending tasks and detaches from the runtime.
func (a *App) Shutdown(ctx context.Context) {
	a.state.advance(StateTerminating)
	a.tasks.Close()
	if !a.tasks.Wait(a.cfg.ShutdownTimeout) {
		a.log.Warn().Dur("timeout", a.cfg.ShutdownTimeout).Msg("pending tasks abandoned")
	}
	a.runtime.Detach()
	a.log.Info().Msg("host stopped")
}

// Options builds the Wails application options for the main window.
func (a *App) Options(assets fs.FS) *options.App {
	return &options.App{
		Title:     a.Title(),
		Width:     a.cfg.Width,
		Height:    a.cfg.Height,
		MinWidth:  config.MinWidth,
		MinHeight: config.MinHeight,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Menu:               a.menu,
		Logger:             logging.NewWailsAdapter(a.base),
		LogLevel:           logging.WailsLevel(a.cfg.LogLevel),
		LogLevelProduction: logging.WailsLevel(a.cfg.LogLevel),
		OnStartup:          a.Startup,
		OnBeforeClose:      a.BeforeClose,
		OnShutdown:         a.Shutdown,
		ErrorFormatter:     bridge.FormatError,
		// Bind the commands to the frontend
		Bind: []interface{}{
			a.commands,
		},
	}
}

// Run blocks in the event loop until the main window closes.
func (a *App) Run(assets fs.FS) error {
	if a.State() != StatePreInit {
		return &InitializationError{Step: "host", Err: errors.New("already started")}
	}
	if err := wails.Run(a.Options(assets)); err != nil {
		return &InitializationError{Step: "host runtime", Err: err}
	}
	return nil
}

// ReportFatal writes err to the log and, where the platform allows it,
// shows a native alert.
func ReportFatal(log zerolog.Logger, info buildinfo.Info, err error) {
	log.Error().Err(err).Msg("startup failed")
	showErrorAlert(info.Name, err.Error())
}
