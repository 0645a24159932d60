package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/cuteplay/internal/artist"
	"github.com/llehouerou/cuteplay/internal/config"
	"github.com/llehouerou/cuteplay/internal/library"
	"github.com/llehouerou/cuteplay/internal/state"
	"github.com/llehouerou/cuteplay/internal/ui/artistlist"
)

var errNoSources = errors.New("no library_sources configured")

func scanCommand() *cli.Command {
	return &cli.Command{
		Name:   "scan",
		Usage:  "Refresh the library from the configured sources",
		Action: runScan,
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print the artists as the browser shows them",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Only keep artists whose name contains this text",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Sort Z to A",
			},
		},
		Action: runList,
	}
}

func runScan(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !cfg.HasLibrarySources() {
		return errNoSources
	}

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	lib := library.New(stateMgr.DB())
	progress := make(chan library.ScanProgress, 16)
	result := make(chan error, 1)
	go func() {
		result <- lib.Refresh(ctx, cfg.LibrarySources, progress)
	}()

	var stats *library.ScanStats
	for p := range progress {
		if p.Stats != nil {
			stats = p.Stats
		}
	}
	if err := <-result; err != nil {
		return fmt.Errorf("scan library: %w", err)
	}

	w := cmd.Root().Writer
	if stats == nil {
		fmt.Fprintln(w, "Scan complete")
		return nil
	}
	fmt.Fprintf(w, "Scan complete: %s added, %s updated, %s removed, %s artists\n",
		humanize.Comma(int64(stats.Added)),
		humanize.Comma(int64(stats.Updated)),
		humanize.Comma(int64(stats.Removed)),
		humanize.Comma(int64(stats.Artists)))
	return nil
}

func runList(_ context.Context, cmd *cli.Command) error {
	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	artists, err := library.New(stateMgr.DB()).Artists()
	if err != nil {
		return fmt.Errorf("load artists: %w", err)
	}

	items := artist.Display(artists, cmd.String("query"), !cmd.Bool("desc"))
	w := cmd.Root().Writer
	if len(items) == 0 {
		fmt.Fprintln(w, artistlist.EmptyText)
		return nil
	}
	for _, a := range items {
		fmt.Fprintf(w, "%d\t%s\n", a.ID, a.Name)
	}
	return nil
}
