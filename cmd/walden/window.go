//go:build cgo

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/config"
	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/gui"
)

const windowSupported = true

func runWindow(session *game.Session, cfg *config.Config, log logrus.FieldLogger) error {
	return gui.NewApp(gui.AppConfig{
		Version:    version,
		Session:    session,
		Window:     cfg.Window,
		FixedDelta: cfg.Loop.FixedDelta,
		Log:        log,
	}).Run()
}
