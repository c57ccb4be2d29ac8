package bridge

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"notepad0/internal/buildinfo"
	"notepad0/internal/textpath"
)

// AboutTitle is the title of the version information dialog.
const AboutTitle = "バージョン情報"

// TaskRunner runs fire-and-forget host work off the calling goroutine.
type TaskRunner interface {
	Go(name string, fn func())
}

// Deps are the collaborators of Commands.
type Deps struct {
	Path    *textpath.Cell
	Window  Window
	Runtime Runtime
	Info    buildinfo.Info
	Tasks   TaskRunner
	Gate    Gate
	Log     zerolog.Logger
	// Fatal ends the process. It defaults to logging at fatal level.
	Fatal func(error)
}

// Commands is the object bound into the UI. Every exported method is
// reachable from JavaScript as window.go.bridge.Commands.<Method>.
type Commands struct {
	registry *Registry
	deps     Deps
}

// NewCommands registers the editor commands and freezes the registry.
func NewCommands(deps Deps) (*Commands, error) {
	if deps.Path == nil || deps.Window == nil || deps.Runtime == nil || deps.Tasks == nil {
		return nil, fmt.Errorf("commands: missing dependency")
	}
	if deps.Fatal == nil {
		log := deps.Log
		deps.Fatal = func(err error) {
			log.Fatal().Err(err).Msg("fatal bridge error")
		}
	}

	c := &Commands{
		registry: NewRegistry(deps.Gate),
		deps:     deps,
	}

	for name, h := range map[string]Handler{
		CmdGetCliTextPath: c.getCliTextPath,
		CmdMenuFileExit:   c.menuFileExit,
		CmdMenuHelpAbout:  c.menuHelpAbout,
	} {
		if err := c.registry.Register(name, h); err != nil {
			return nil, err
		}
	}
	c.registry.Freeze()

	return c, nil
}

// Invoke runs a command by its stable name. The UI uses this for menu ids
// it does not handle itself.
func (c *Commands) Invoke(name string) (any, error) {
	result, err := c.registry.Invoke(name)
	if err != nil {
		c.deps.Log.Warn().Err(err).Str("command", name).Msg("command rejected")
		return nil, err
	}
	c.deps.Log.Debug().Str("command", name).Msg("command invoked")
	return result, nil
}

// GetCliTextPath returns the file named on the command line, or "".
func (c *Commands) GetCliTextPath() (string, error) {
	result, err := c.Invoke(CmdGetCliTextPath)
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// MenuFileExit closes the main window.
func (c *Commands) MenuFileExit() error {
	_, err := c.Invoke(CmdMenuFileExit)
	return err
}

// MenuHelpAbout shows the version dialog without waiting for it.
func (c *Commands) MenuHelpAbout() error {
	_, err := c.Invoke(CmdMenuHelpAbout)
	return err
}

func (c *Commands) getCliTextPath() (any, error) {
	path, err := c.deps.Path.Get()
	if err != nil {
		return nil, ErrPathNotCaptured
	}
	return path, nil
}

func (c *Commands) menuFileExit() (any, error) {
	w := c.deps.Window
	if err := w.Close(); err != nil {
		c.deps.Fatal(fmt.Errorf("close %s window: %w", w.Label(), err))
	}
	return nil, nil
}

func (c *Commands) menuHelpAbout() (any, error) {
	opts := AboutDialog(c.deps.Info)
	parent := c.deps.Window.Label()
	c.deps.Tasks.Go("about-dialog", func() {
		if _, err := c.deps.Runtime.MessageDialog(opts); err != nil {
			c.deps.Log.Error().
				Err(&DialogPresentationError{Title: opts.Title, Err: err}).
				Str("window", parent).
				Msg("about dialog failed")
		}
	})
	return nil, nil
}

// AboutDialog returns the options of the version information dialog.
func AboutDialog(info buildinfo.Info) runtime.MessageDialogOptions {
	return runtime.MessageDialogOptions{
		Type:    runtime.InfoDialog,
		Title:   AboutTitle,
		Message: info.String(),
	}
}
