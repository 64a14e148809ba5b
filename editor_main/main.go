// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"net"
	"net/http"
	_ "net/http/pprof"

	"go.uber.org/zap"
	"golang.org/x/net/netutil"

	"github.com/gubacajifad-ctrl/terraforge/editor"
	"github.com/gubacajifad-ctrl/terraforge/editor/cloud"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	c, err := cloud.New(cfg.Cloud)
	if err != nil {
		logger.Warn("cloud unavailable, running offline", zap.Error(err))
	}
	logger.Info("cloud", zap.Stringer("mode", c))

	hub, err := editor.NewHub(editor.Options{
		Resolution: cfg.Terrain.Resolution,
		WorldSize:  cfg.Terrain.WorldSize,
		Seed:       cfg.Terrain.Seed,
	}, c, logger)
	if err != nil {
		logger.Fatal("invalid terrain configuration", zap.Error(err))
	}
	go hub.Run()

	http.HandleFunc("/", hub.ServeStatus)
	http.HandleFunc("/ws", hub.ServeWs)

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("listen error", zap.Error(err))
	}
	if cfg.MaxConns > 0 {
		listener = netutil.LimitListener(listener, cfg.MaxConns)
	}

	logger.Info("terraforge editor started", zap.String("listen", cfg.Listen))
	logger.Fatal("serve error", zap.Error(http.Serve(listener, nil)))
}
