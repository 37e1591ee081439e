package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justfortestingnothibghere/Api/internal/shared"
	"github.com/justfortestingnothibghere/Api/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive song browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	srv, err := r.songService(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/songapi-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, srv)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
