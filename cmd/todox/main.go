package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"todox/internal/config"
	"todox/internal/tabs"
	"todox/internal/trace"
	"todox/internal/ui"
)

func run(args []string) error {
	fs := config.Flags()
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: todox [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A small tabbed to-do list for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}

	// The terminal belongs to Bubble Tea; logs go to a file or nowhere.
	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "todox")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	tp, err := trace.NewOTLPProvider(ctx)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	app, err := ui.NewAppModel(ui.Options{
		Title:   cfg.UI.Title,
		Style:   cfg.UI.Style,
		Seed:    cfg.Tasks.Seed,
		ExitTab: cfg.UI.ExitTab,
		Dismiss: tabs.DismissFunc(func() { log.Printf("dismissed from exit tab") }),
	})
	if err != nil {
		return err
	}
	trace.InstrumentTasks(tp, app.Home.Tasks)
	trace.InstrumentTabs(tp, app.Tabs)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(app.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "todox: %v\n", err)
		os.Exit(1)
	}
}
