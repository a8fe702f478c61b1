package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/config"
	"github.com/ja-he/memeplan/internal/potatolog"
	"github.com/ja-he/memeplan/internal/styling"
	"github.com/ja-he/memeplan/internal/tui"
)

// EditCommand contains flags for the `edit` command line command, for
// `go-flags` to parse command line args into.
type EditCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	Args struct {
		Draft string `positional-arg-name:"<draft-id-or-file>"`
	} `positional-args:"yes" required:"yes"`
}

// Execute executes the edit command.
// (This gets called by `go-flags` when `edit` is provided on the command line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	env, err := newEnvironment(theme)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	ref, snap, err := env.openDraftRef(ctx, command.Args.Draft)
	cancel()
	if err != nil {
		return err
	}

	s := env.newSession()
	for _, w := range s.Restore(snap) {
		log.Warn().Stringer("warning", w).Stringer("draft", ref).Msg("draft restored with warnings")
	}
	// opening the draft is not something to undo
	s.ClearHistory()

	stylesheet, err := styling.NewStylesheetFromConfig(env.config.Stylesheet)
	if err != nil {
		return fmt.Errorf("could not set up styles (%w)", err)
	}

	screenHandler, err := tui.NewTerminalScreenHandler()
	if err != nil {
		return err
	}

	controller, err := NewController(ref, s, stylesheet, screenHandler)
	if err != nil {
		screenHandler.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
