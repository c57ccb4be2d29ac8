package main

import (
	"embed"
	"io/fs"
	"os"

	"notepad0/internal/app"
	"notepad0/internal/buildinfo"
	"notepad0/internal/cli"
	"notepad0/internal/config"
	"notepad0/internal/logging"
	"notepad0/internal/textpath"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	info := buildinfo.Current()

	// Parse the command line before anything touches the window system
	opts, err := cli.Parse(info, args, os.Stdout, os.Stderr)
	if err != nil {
		return cli.ExitCode(err)
	}

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if cfgErr != nil {
		app.ReportFatal(log, info, &app.InitializationError{Step: "configuration", Err: cfgErr})
		return cli.ExitFailure
	}

	// Publish the path once; the UI reads it through get_cli_text_path
	path := &textpath.Cell{}
	if err := path.Set(opts.TextPath); err != nil {
		log.Fatal().Err(err).Msg("text path published twice")
	}
	log.Debug().Str("path", opts.TextPath).Msg("command line captured")

	// Extract the embedded filesystem to serve from the correct subdirectory
	distFS, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		app.ReportFatal(log, info, &app.InitializationError{Step: "assets", Err: err})
		return cli.ExitFailure
	}

	host, err := app.New(app.Params{
		Config: cfg,
		Info:   info,
		Path:   path,
		Log:    log,
	})
	if err != nil {
		app.ReportFatal(log, info, err)
		return cli.ExitFailure
	}

	if err := host.Run(distFS); err != nil {
		app.ReportFatal(log, info, err)
		return cli.ExitFailure
	}
	return cli.ExitOK
}
