package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adaptersound "workspace/internal/adapters/sound"
	"workspace/internal/domain"
	"workspace/internal/logging"
	"workspace/internal/ports"
	"workspace/internal/ui"
)

// WatchCmd runs the live workspace dashboard
type WatchCmd struct {
	Interval int  `help:"Seconds between polls" default:"5"`
	Sound    bool `help:"Play a notification sound when a workspace completes"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	interval := w.Interval
	if interval == 5 && cli.settings != nil && cli.settings.WatchInterval != nil {
		interval = *cli.settings.WatchInterval
	}
	if interval < 1 {
		interval = 1
	}

	poller := &registryPoller{container: cli.Container}
	if w.Sound {
		poller.sound = adaptersound.NewPlayer()
	}

	model := ui.NewWatchModel(poller, time.Duration(interval)*time.Second)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// registryPoller advances workspace state on every poll and persists the
// transitions, so completions observed here survive the dashboard exiting
type registryPoller struct {
	container *Container
	sound     ports.SoundPlayer // nil when the completion sound is off
}

var _ ui.Poller = (*registryPoller)(nil)

// Poll runs one sweep as a registry transaction
func (p *registryPoller) Poll(ctx context.Context) (*ui.PollResult, error) {
	var result *ui.PollResult

	err := p.container.WithRegistry(ctx, func(reg *domain.Registry) error {
		statuses, completed := p.container.StatusService.Sweep(ctx, reg, true)
		result = &ui.PollResult{Completed: completed, Statuses: statuses}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if p.sound != nil && len(result.Completed) > 0 {
		if err := p.sound.PlayCompletion(); err != nil {
			logging.Logger.Warn("Failed to play completion sound", "error", err)
		}
	}

	return result, nil
}
