// Package app wires configuration, line I/O, the event bus and plugins around a
// single editing session.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/tidebuf/internal/clipboard"
	"github.com/bethropolis/tidebuf/internal/config"
	"github.com/bethropolis/tidebuf/internal/event"
	"github.com/bethropolis/tidebuf/internal/lineio"
	"github.com/bethropolis/tidebuf/internal/logger"
	"github.com/bethropolis/tidebuf/internal/plugin"
	"github.com/bethropolis/tidebuf/internal/session"
	"github.com/bethropolis/tidebuf/internal/text"
	"github.com/bethropolis/tidebuf/internal/tui"
)

// Options are the process-level inputs to NewApp.
type Options struct {
	Config     *config.Config
	InputPath  string // Empty or "-" reads Stdin
	OutputPath string // Empty writes Stdout

	Stdin  io.Reader
	Stdout io.Writer

	// NewConsole builds the interactive console. Defaults to tui.New.
	NewConsole func() (*tui.Console, error)
}

// App encapsulates the components of one run.
type App struct {
	cfg           *config.Config
	units         text.Units
	mode          string
	eventManager  *event.Manager
	session       *session.Session
	processor     *session.Processor
	pluginManager *plugin.Manager
	exporter      *clipboard.Exporter
	console       *tui.Console
	sink          *lineio.WriterSink

	statusMessage string
	closers       []func() error
}

// NewApp creates and wires a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.NewConsole == nil {
		opts.NewConsole = tui.New
	}

	units, err := text.Parse(cfg.Session.Units)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:          cfg,
		units:        units,
		mode:         chooseInterface(cfg.Session.Interface, opts),
		eventManager: event.NewManager(),
		session:      session.New(units),
	}
	logger.Debugf("App: interface %q, units %q", a.mode, units.Name())

	source, sink, err := a.openIO(opts)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.processor = session.NewProcessor(source, sink, a.session, a.eventManager)

	if a.console != nil {
		a.console.Subscribe(a.eventManager)
	}
	if cfg.Session.SystemClipboard {
		a.setupClipboard()
	}
	if cfg.Session.ReportStats {
		if err := a.setupPlugins(); err != nil {
			a.Close()
			return nil, err
		}
	}
	return a, nil
}

// openIO resolves the line source and sink for the selected interface.
func (a *App) openIO(opts Options) (session.LineSource, session.LineSink, error) {
	if a.mode == config.InterfaceTUI && opts.InputPath != "" && opts.InputPath != "-" {
		return nil, nil, fmt.Errorf("input file '%s' cannot be used with the %s interface", opts.InputPath, config.InterfaceTUI)
	}

	var out io.Writer = opts.Stdout
	if opts.OutputPath != "" {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file '%s': %w", opts.OutputPath, err)
		}
		a.closers = append(a.closers, f.Close)
		out = f
	}

	if a.mode == config.InterfaceTUI {
		console, err := opts.NewConsole()
		if err != nil {
			return nil, nil, fmt.Errorf("TUI initialization failed: %w", err)
		}
		a.console = console
		if opts.OutputPath == "" {
			return console, console, nil
		}
		a.sink = lineio.NewWriterSink(out)
		return console, teeSink{console, a.sink}, nil
	}

	var in io.Reader = opts.Stdin
	if opts.InputPath != "" && opts.InputPath != "-" {
		f, err := os.Open(opts.InputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open input file '%s': %w", opts.InputPath, err)
		}
		a.closers = append(a.closers, f.Close)
		in = f
	}
	a.sink = lineio.NewWriterSink(out)
	return lineio.NewReaderSource(in), a.sink, nil
}

func (a *App) setupClipboard() {
	if !clipboard.Available() {
		logger.Warnf("App: system clipboard requested but not supported on this system")
		return
	}
	a.exporter = clipboard.NewExporter()
	a.exporter.Subscribe(a.eventManager)
}

// Run processes the whole session, then shuts plugins down and releases resources.
func (a *App) Run() error {
	logger.Infof("Starting session...")
	runErr := a.processor.Run()

	if a.pluginManager != nil {
		a.pluginManager.ShutdownPlugins()
	}
	var flushErr error
	if a.sink != nil {
		flushErr = a.sink.Flush()
	}
	closeErr := a.Close()

	if runErr != nil {
		return runErr
	}
	if flushErr != nil {
		return fmt.Errorf("failed to write output: %w", flushErr)
	}
	return closeErr
}

// Close releases the console and any files opened by NewApp.
func (a *App) Close() error {
	if a.console != nil {
		a.console.Close()
		a.console = nil
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Session returns the session driven by this app.
func (a *App) Session() *session.Session { return a.session }

// Mode returns the resolved interface: stream or tui.
func (a *App) Mode() string { return a.mode }

// Plugins returns the plugin manager, nil unless stats reporting is on.
func (a *App) Plugins() *plugin.Manager { return a.pluginManager }

// StatusMessage returns the last message set through the plugin API.
func (a *App) StatusMessage() string { return a.statusMessage }

// teeSink writes every line to both sinks.
type teeSink struct {
	first, second session.LineSink
}

func (t teeSink) WriteLine(line string) error {
	if err := t.first.WriteLine(line); err != nil {
		return err
	}
	return t.second.WriteLine(line)
}
