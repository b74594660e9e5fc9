//go:build !cgo

package main

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/config"
	"github.com/appengine-ltd/walden/internal/game"
)

const windowSupported = false

func runWindow(*game.Session, *config.Config, logrus.FieldLogger) error {
	return errors.New("the window client needs a cgo build; use -terminal")
}
