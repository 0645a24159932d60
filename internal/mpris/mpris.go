//go:build linux

// Package mpris exposes playback over D-Bus so desktop media keys and
// widgets can control the player.
package mpris

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/server"

	"github.com/llehouerou/cuteplay/internal/playback"
)

const busName = "cuteplay"

// Adapter serves the MPRIS interfaces for a playback service and signals
// property changes when the service reports them.
type Adapter struct {
	server *server.Server
	events *events.EventHandler
	sub    *playback.Subscription
	logger *log.Logger
}

// New starts serving on the session bus. The returned adapter must be
// closed to release the bus name.
func New(service playback.Service, logger *log.Logger) (*Adapter, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	srv := server.NewServer(busName, root{}, &player{service: service})
	a := &Adapter{
		server: srv,
		events: events.NewEventHandler(srv),
		sub:    service.Subscribe(),
		logger: logger,
	}

	go func() {
		if err := srv.Listen(); err != nil {
			logger.Warn("mpris server stopped", "err", err)
		}
	}()
	go a.forward()

	return a, nil
}

// forward turns service events into PropertiesChanged signals until the
// service shuts down.
func (a *Adapter) forward() {
	for {
		var err error
		select {
		case <-a.sub.StateChanged:
			err = a.events.Player.OnPlayPause()
		case <-a.sub.TrackChanged:
			err = a.events.Player.OnTitle()
		case <-a.sub.Done:
			return
		}
		if err != nil {
			a.logger.Debug("mpris signal failed", "err", err)
		}
	}
}

func (a *Adapter) Close() error {
	return a.server.Stop()
}
