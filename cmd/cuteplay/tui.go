package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/cuteplay/internal/app"
	"github.com/llehouerou/cuteplay/internal/config"
	"github.com/llehouerou/cuteplay/internal/icons"
	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/logging"
	"github.com/llehouerou/cuteplay/internal/mpris"
	"github.com/llehouerou/cuteplay/internal/playback"
	"github.com/llehouerou/cuteplay/internal/player"
	"github.com/llehouerou/cuteplay/internal/state"
	"github.com/llehouerou/cuteplay/internal/stderr"
)

// runTUI runs the artist browser until the user quits.
func runTUI(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	icons.Init(cfg.Icons)

	logger, logFile, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Audio libraries write to fd 2, which would corrupt the screen.
	if err := stderr.Start(logging.Component(logger, "stderr")); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}

	lib := library.New(stateMgr.DB())
	svc := playback.New(player.New(), lib, logging.Component(logger, "playback"))

	adapter, err := mpris.New(svc, logging.Component(logger, "mpris"))
	if err != nil {
		logger.Warn("mpris unavailable", "err", err)
	} else {
		defer adapter.Close()
	}

	m, err := app.New(app.Deps{
		Config:   cfg,
		Library:  lib,
		State:    stateMgr,
		Playback: svc,
		Logger:   logging.Component(logger, "app"),
	})
	if err != nil {
		_ = svc.Close()
		_ = stateMgr.Close()
		return err
	}

	logger.Info("starting", "version", version, "sources", len(cfg.LibrarySources))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok && err != nil {
		// Quit was not reached; release what it would have.
		fm.Quit()
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
