// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/solidcoredata/miniconf/binconfig"
)

func TestLoadFromIni(t *testing.T) {
	dir := t.TempDir()
	src := "name = \"widget\"\nport = 8080\n"
	if err := os.WriteFile(filepath.Join(dir, "config.ini"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	r, err := binconfig.NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	v, err := r.Root().Get("name")
	if err != nil {
		t.Fatalf("Get(name): %v", err)
	}
	s, err := v.String()
	if err != nil || s != "widget" {
		t.Fatalf("name = %q, %v, want %q, nil", s, err, "widget")
	}
}

func TestLoadPrefersCompiledBuffer(t *testing.T) {
	dir := t.TempDir()
	w := binconfig.New(1)
	w.I64("a", 1)
	compiled, err := w.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.bincfg"), compiled, 0o644); err != nil {
		t.Fatal(err)
	}
	// An invalid config.ini alongside it must be ignored since the
	// compiled buffer takes precedence.
	if err := os.WriteFile(filepath.Join(dir, "config.ini"), []byte("not used"), 0o644); err != nil {
		t.Fatal(err)
	}

	buf, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(buf) != string(compiled) {
		t.Fatal("Load did not prefer the compiled buffer")
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected an error")
	}
}
