// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/gubacajifad-ctrl/terraforge/editor/cloud"
	"github.com/gubacajifad-ctrl/terraforge/editor/terrain"
)

const snapshotPeriod = 5 * time.Minute

// Options configure a Hub.
type Options struct {
	Resolution int
	WorldSize  float32
	Seed       int64
}

// Hub owns the field and serializes every edit. Edit operations read-then-
// write the field buffers without isolation, so they only ever run on the hub
// goroutine, one inbound message at a time.
type Hub struct {
	field  *terrain.Field
	cloud  *cloud.Cloud // nil means offline
	logger *zap.Logger

	clients ClientList // implemented as doubly-linked list

	// Served atomically by HTTP
	statusJSON atomic.Value

	// Inbound channels
	inbound    chan SignedInbound
	register   chan Client
	unregister chan Client

	snapshotTicker *time.Ticker
}

// NewHub creates a hub with a freshly initialized field.
// A nil cloud is valid and disables snapshot persistence.
func NewHub(opts Options, c *cloud.Cloud, logger *zap.Logger) (*Hub, error) {
	field, err := terrain.NewWithSeed(opts.Resolution, opts.WorldSize, opts.Seed)
	if err != nil {
		return nil, err
	}

	hub := &Hub{
		field:          field,
		cloud:          c,
		logger:         logger,
		inbound:        make(chan SignedInbound, 32),
		register:       make(chan Client, 8),
		unregister:     make(chan Client, 16),
		snapshotTicker: time.NewTicker(snapshotPeriod),
	}
	hub.updateStatus()
	return hub, nil
}

// updateStatus refreshes the JSON served by ServeStatus.
// Only called on the hub goroutine (or before Run starts).
func (h *Hub) updateStatus() {
	buf, err := json.Marshal(struct {
		Resolution int     `json:"resolution"`
		WorldSize  float32 `json:"worldSize"`
		Clients    int     `json:"clients"`
	}{
		Resolution: h.field.Resolution(),
		WorldSize:  h.field.WorldSize(),
		Clients:    h.clients.Len,
	})
	if err != nil {
		h.logger.Error("error marshaling status", zap.Error(err))
		return
	}
	h.statusJSON.Store(buf)
}

// Register hands a client to the hub goroutine.
func (h *Hub) Register(client Client) {
	h.register <- client
}

// Run processes clients and edits until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients.Add(client)
			client.Data().Hub = h
			client.Init()

			client.Send(Welcome{
				Resolution:    h.field.Resolution(),
				WorldSize:     h.field.WorldSize(),
				ChunksPerSide: h.field.ChunksPerSide(),
			})
			h.updateStatus()
			h.logger.Info("client registered", zap.Int("clients", h.clients.Len))
		case client := <-h.unregister:
			client.Close()
			client.Data().Hub = nil
			h.clients.Remove(client)
			h.updateStatus()
			h.logger.Info("client unregistered", zap.Int("clients", h.clients.Len))
		case in := <-h.inbound:
			// Read all messages currently in the channel
			n := len(h.inbound)

			for {
				// If not same hub the message is old
				data := in.Client.Data()
				if h == data.Hub {
					in.Inbound(h, in.Client)
				}

				if n--; n <= 0 {
					break
				}

				in = <-h.inbound
			}
		case <-h.snapshotTicker.C:
			h.SnapshotTerrain()
		}
	}
}

// broadcastDirty sends an Invalidate to every client. An empty dirty set
// means the edit was a no-op and nothing needs rebuilding.
func (h *Hub) broadcastDirty(dirty terrain.ChunkSet) {
	if len(dirty) == 0 {
		return
	}

	ids := dirty.IDs()
	for client := h.clients.First; client != nil; client = client.Data().Next {
		client.Send(newInvalidate(ids))
	}
}
