// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rpc wraps a compiled binconfig buffer behind a small
// request/response surface, servable in-process or carried over an RPC
// transport without either side needing to share the reader's memory.
package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/solidcoredata/miniconf/binconfig"
)

// ConfigService answers queries against one compiled configuration.
type ConfigService interface {
	Alive(ctx context.Context, req *AliveRequest) (*AliveResponse, error)
	Get(ctx context.Context, req *GetRequest) (*GetResponse, error)
	Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResponse, error)
}

type AliveRequest struct{}
type AliveResponse struct{}

// GetRequest asks for the value at Path, a dot-separated key sequence
// walked one table at a time from the root (e.g. "server.listen.port").
type GetRequest struct {
	Path string
}

// GetResponse carries the value found at the requested path. Kind names
// which of the typed fields is populated.
type GetResponse struct {
	Kind   string
	Bool   bool
	I64    int64
	F64    float64
	String string
}

// ResolveRequest asks for every key directly under Path ("" for root),
// without descending into nested tables.
type ResolveRequest struct {
	Path string
}

type ResolveResponse struct {
	Keys []string
}

// Server implements ConfigService over a single binconfig.Reader. It is
// safe for concurrent use: Reader itself makes that guarantee, and
// Server holds no other mutable state.
type Server struct {
	Reader *binconfig.Reader
}

func (s *Server) Alive(ctx context.Context, req *AliveRequest) (*AliveResponse, error) {
	return &AliveResponse{}, nil
}

func (s *Server) Get(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	view, err := walk(s.Reader, req.Path)
	if err != nil {
		return nil, err
	}
	resp := &GetResponse{Kind: view.Kind().String()}
	switch view.Kind().String() {
	case "bool":
		resp.Bool, err = view.Bool()
	case "i64":
		resp.I64, err = view.I64()
	case "f64":
		resp.F64, err = view.F64()
	case "string":
		resp.String, err = view.String()
	default:
		return nil, errors.New("rpc: value at path is not a scalar")
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *Server) Resolve(ctx context.Context, req *ResolveRequest) (*ResolveResponse, error) {
	if req.Path == "" {
		return &ResolveResponse{Keys: s.Reader.Root().Keys()}, nil
	}
	view, err := walk(s.Reader, req.Path)
	if err != nil {
		return nil, err
	}
	tbl, err := view.Table()
	if err != nil {
		return nil, err
	}
	return &ResolveResponse{Keys: tbl.Keys()}, nil
}

// walk descends from the root table one dot-separated segment at a
// time, returning the ValueView at the final segment.
func walk(r *binconfig.Reader, path string) (binconfig.ValueView, error) {
	segments := strings.Split(path, ".")
	tbl := r.Root()
	for i, seg := range segments {
		v, err := tbl.Get(seg)
		if err != nil {
			return binconfig.ValueView{}, err
		}
		if i == len(segments)-1 {
			return v, nil
		}
		tbl, err = v.Table()
		if err != nil {
			return binconfig.ValueView{}, err
		}
	}
	return binconfig.ValueView{}, errors.New("rpc: empty path")
}

var _ ConfigService = (*Server)(nil)
