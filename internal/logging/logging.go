// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging constructs the service logger. The logger is built once in
// the serve command and injected; packages do not reach for a global.
package logging

import (
	"github.com/sirupsen/logrus"
)

// New returns a logrus logger at the named level. An unknown level name
// falls back to info.
func New(level string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	return log
}
