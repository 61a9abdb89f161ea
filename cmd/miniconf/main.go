// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/solidcoredata/miniconf/binconfig"
	"github.com/solidcoredata/miniconf/dynconfig"
	"github.com/solidcoredata/miniconf/iniconf"
	"github.com/solidcoredata/miniconf/internal/start"
	"github.com/solidcoredata/miniconf/service/config"
)

var (
	inputPath = flag.String("in", "", "path to an .ini file")
	dump      = flag.Bool("dump", false, "dump the parsed tree and exit")
	compile   = flag.String("compile", "", "compile -in to a .bincfg file at this path")
	serve     = flag.Bool("serve", false, "serve the compiled config until interrupted")
)

func main() {
	flag.Parse()
	err := start.Start(context.Background(), time.Second*5, run)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if *serve {
		return start.RunAll(ctx, config.Run)
	}

	if *inputPath == "" {
		return fmt.Errorf("miniconf: -in is required")
	}
	src, err := os.ReadFile(*inputPath)
	if err != nil {
		return err
	}
	tree := dynconfig.NewTree()
	if err := iniconf.Parse(string(src), iniconf.DefaultOptions(), tree); err != nil {
		return err
	}

	if *dump {
		fmt.Print(tree.Root().Dump())
		return nil
	}

	if *compile != "" {
		buf, err := binconfig.FromTree(tree.Root())
		if err != nil {
			return err
		}
		return os.WriteFile(*compile, buf, 0o644)
	}

	return fmt.Errorf("miniconf: one of -dump, -compile, or -serve is required")
}
