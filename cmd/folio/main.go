package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
	"golang.org/x/term"

	"github.com/vanderheijden86/folio/pkg/config"
	"github.com/vanderheijden86/folio/pkg/content"
	"github.com/vanderheijden86/folio/pkg/debug"
	"github.com/vanderheijden86/folio/pkg/metrics"
	"github.com/vanderheijden86/folio/pkg/ui"
	"github.com/vanderheijden86/folio/pkg/version"
	"github.com/vanderheijden86/folio/pkg/watcher"
)

// defaultPrintWidth is used by -print when stdout is not a terminal.
const defaultPrintWidth = 100

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole program. It returns the exit code so deferred cleanup
// (watcher, subscriptions) happens on every path before the process exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	fs.SetOutput(stderr)
	contentPath := fs.String("content", "", "Path to a portfolio YAML file (default: built-in portfolio)")
	configPath := fs.String("config", "", "Path to the config file (default: "+config.ConfigPath()+")")
	watchFlag := fs.Bool("watch", false, "Reload the content file when it changes")
	printFlag := fs.Bool("print", false, "Render the page once to stdout and exit")
	dumpFlag := fs.Bool("dump-content", false, "Print the content model as JSON and exit")
	writeConfigFlag := fs.Bool("write-config", false, "Save the effective config (after flags) and exit")
	metricsFlag := fs.Bool("metrics", false, "Print timing metrics to stderr on exit")
	versionFlag := fs.Bool("version", false, "Show version")
	help := fs.Bool("help", false, "Show help")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *help {
		fmt.Fprintln(stdout, "Usage: folio [options]")
		fmt.Fprintln(stdout, "\nA terminal portfolio page. g scrolls to the top, c jumps to contact.")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "folio %s\n", version.Version)
		return 0
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *contentPath != "" {
		cfg.Content = *contentPath
	}
	if *watchFlag {
		cfg.Watch = true
	}

	if *writeConfigFlag {
		path, err := writeConfig(cfg, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error writing config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return 0
	}

	c, err := loadContent(cfg.Content)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading content: %v\n", err)
		return 1
	}

	if *dumpFlag {
		if err := dumpContent(stdout, c); err != nil {
			fmt.Fprintf(stderr, "Error encoding content: %v\n", err)
			return 1
		}
		return 0
	}

	if *printFlag {
		fd := -1
		if f, ok := stdout.(*os.File); ok {
			fd = int(f.Fd())
		}
		theme := ui.ThemeByName(cfg.UI.Theme, lipgloss.NewRenderer(stdout))
		if !term.IsTerminal(fd) {
			theme = ui.PlainTheme()
		}
		fmt.Fprint(stdout, ui.RenderStatic(c, theme, printWidth(fd), cfg.UI.MaxWidth, time.Now().Year()))
		return 0
	}

	var opts []ui.Option
	if cfg.Watch {
		if cfg.Content == "" {
			fmt.Fprintln(stderr, "Error: -watch needs a content file (-content or config 'content')")
			return 2
		}
		w, err := watcher.New(cfg.Content)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating watcher: %v\n", err)
			return 1
		}
		if err := w.Start(); err != nil {
			fmt.Fprintf(stderr, "Error starting watcher: %v\n", err)
			return 1
		}
		defer w.Stop()
		opts = append(opts, ui.WithWatcher(w))
	}

	m, err := ui.NewModel(c, cfg, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer m.Stop()

	err = runTUIProgram(m)
	if *metricsFlag {
		metrics.WriteSummary(stderr)
	}
	for _, s := range metrics.AllTimingStats() {
		debug.LogTiming(s.Name+" (avg)", time.Duration(s.AvgMs*float64(time.Millisecond)))
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error running folio: %v\n", err)
		return 1
	}
	return 0
}

// writeConfig saves cfg to path, or to the default config location when path
// is empty, and returns where it was written.
func writeConfig(cfg config.Config, path string) (string, error) {
	if path == "" {
		debug.Log("writing config to %s", config.ConfigPath())
		return config.ConfigPath(), config.Save(cfg)
	}
	debug.Log("writing config to %s", path)
	return path, config.SaveTo(cfg, path)
}

// loadContent reads path, or returns the built-in portfolio when path is
// empty.
func loadContent(path string) (content.Content, error) {
	if path == "" {
		return content.Default(), nil
	}
	debug.Log("loading content from %s", path)
	return content.LoadFrom(path)
}

func dumpContent(w io.Writer, c content.Content) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// printWidth is the terminal width for fd, or defaultPrintWidth when fd is
// not a terminal.
func printWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return defaultPrintWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultPrintWidth
	}
	return w
}

func runTUIProgram(m ui.Model) error {
	defer debug.LogEnterExit("runTUIProgram")()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for scripted smoke runs: set FOLIO_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("FOLIO_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}
				p.Quit()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
