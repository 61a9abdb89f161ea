// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads a configuration file from a directory, compiles
// it to a binconfig buffer, and serves it over rpc.ConfigService until
// the context is canceled.
package config

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/solidcoredata/miniconf/binconfig"
	"github.com/solidcoredata/miniconf/dynconfig"
	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/rpc"
)

var dir = flag.String("config", "", "configuration directory")

// Service holds the most recently loaded configuration, exported so an
// in-process caller (the CLI, a test) can query it through
// rpc.ConfigService without standing up a network transport.
var Service *rpc.Server

// Load reads dir for a config file and returns it compiled to a
// binconfig buffer. It looks for "config.bincfg" first, then falls back
// to parsing "config.ini" under the default INI dialect.
func Load(dir string) ([]byte, error) {
	if binBuf, err := os.ReadFile(filepath.Join(dir, "config.bincfg")); err == nil {
		return binBuf, nil
	}
	src, err := os.ReadFile(filepath.Join(dir, "config.ini"))
	if err != nil {
		return nil, err
	}
	tree := dynconfig.NewTree()
	if err := iniconf.Parse(string(src), iniconf.DefaultOptions(), tree); err != nil {
		return nil, err
	}
	return binconfig.FromTree(tree.Root())
}

// Run loads the configured directory's config file and serves it as a
// rpc.ConfigService until ctx is canceled.
func Run(ctx context.Context) error {
	if len(*dir) == 0 {
		return errors.New("missing configuration directory")
	}
	buf, err := Load(*dir)
	if err != nil {
		return err
	}
	reader, err := binconfig.NewReader(buf)
	if err != nil {
		return err
	}
	Service = &rpc.Server{Reader: reader}

	<-ctx.Done()
	return nil
}
