// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   4096,
	WriteBufferSize:  2048,
}

// ServeWs upgrades an HTTP request and registers the client on the hub.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade error", zap.Error(err))
		return
	}

	h.Register(NewSocketClient(conn, h.logger))
}

// ServeStatus reports the field's shape and client count as JSON.
func (h *Hub) ServeStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")

	if buf, ok := h.statusJSON.Load().([]byte); ok {
		_, _ = w.Write(buf)
	}
}
