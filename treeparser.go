// SPDX-License-Identifier: MIT

// Package treeparser converts between flat, parent-linked entity lists & trees.
//
// Entities are opaque; their structure is described by accessor functions supplied per call:
// an id, a parent id (nil for none), a level, a children getter & a children setter.
package treeparser

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the package's operations.
	Config struct {
		// Logger for treeparser messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool
	}
)

var defConfig = DefConfig()

// DefConfig obtains the package's default options.
func DefConfig() *Config {
	return &Config{
		Logger: logrus.New(),
		Debug:  false,
	}
}

// SetConfig replaces the package's [Config].
//
// A nil Logger is replaced with a default logrus.Logger.
func SetConfig(cfg *Config) {
	if cfg == nil {
		cfg = DefConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	defConfig = cfg
}

// GetConfig retrieves the active [Config].
func GetConfig() *Config { return defConfig }
