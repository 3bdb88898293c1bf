package mediator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrEmptyName is returned when joining a room with an empty participant
// name.
var ErrEmptyName = errors.New("mediator: empty participant name")

// ChatMessage is what participants exchange through a room.
type ChatMessage struct {
	From string
	Text string
}

// Participant receives chat messages routed by the room.
type Participant interface {
	Name() string
	Receive(ctx context.Context, msg ChatMessage) error
}

// Room is a chat room where participants never hold references to each
// other. All traffic flows through the embedded mediator, which is the
// single place that knows who is present.
type Room struct {
	hub    *Mediator
	topic  string
	logger *slog.Logger

	mu      sync.Mutex
	present map[string]*membership
}

// membership is one join. Each Join allocates a fresh membership captured by
// its handler closure, so a handler left behind by Leave stays dead even when
// the same name joins again.
type membership struct {
	active bool
}

// RoomOption configures a Room.
type RoomOption func(*Room)

// WithRoomLogger sets the logger for room traffic. Defaults to
// slog.Default().
func WithRoomLogger(logger *slog.Logger) RoomOption {
	return func(r *Room) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRoom creates a chat room identified by name.
func NewRoom(name string, opts ...RoomOption) *Room {
	r := &Room{
		hub:     New(),
		topic:   "room." + name,
		logger:  slog.Default(),
		present: make(map[string]*membership),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Join adds a participant. Messages broadcast by others will be delivered
// to it; its own broadcasts are not echoed back.
func (r *Room) Join(p Participant) error {
	if p == nil {
		return ErrNilHandler
	}
	name := p.Name()
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	if m, ok := r.present[name]; ok && m.active {
		r.mu.Unlock()
		return fmt.Errorf("mediator: participant %q already in room", name)
	}
	m := &membership{active: true}
	r.present[name] = m
	r.mu.Unlock()

	return r.hub.Register(r.topic, func(ctx context.Context, msg any) error {
		cm, ok := msg.(ChatMessage)
		if !ok || cm.From == name {
			return nil
		}
		r.mu.Lock()
		active := m.active
		r.mu.Unlock()
		if !active {
			return nil
		}
		return p.Receive(ctx, cm)
	})
}

// Leave removes a participant. Its handler stays registered but is tied to
// the deactivated membership, so it never fires again; a rejoin under the
// same name gets a fresh membership and exactly one live handler.
func (r *Room) Leave(name string) {
	r.mu.Lock()
	if m, ok := r.present[name]; ok {
		m.active = false
		delete(r.present, name)
	}
	r.mu.Unlock()
}

// Broadcast sends a message from the named participant to everyone else in
// the room.
func (r *Room) Broadcast(ctx context.Context, from, text string) error {
	r.logger.InfoContext(ctx, "room broadcast",
		slog.String("room", r.topic),
		slog.String("from", from),
	)
	err := r.hub.Send(ctx, r.topic, ChatMessage{From: from, Text: text})
	if IsNoHandlerError(err) {
		// An empty room is not an error for the speaker.
		return nil
	}
	return err
}

// Present returns the number of participants currently in the room.
func (r *Room) Present() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.present)
}
