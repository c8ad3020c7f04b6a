package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/KirkDiggler/deathroll/internal/common/uuid"
	"github.com/KirkDiggler/deathroll/internal/models"
	"github.com/KirkDiggler/deathroll/internal/services/deathroll"
	"github.com/gorilla/websocket"
)

// HandlerError represents a handler configuration error
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	// ErrNilConfig is returned when no config is provided
	ErrNilConfig = HandlerError("config is required")

	// ErrNilHub is returned when no hub is provided
	ErrNilHub = HandlerError("hub is required")

	// ErrNilService is returned when no deathroll service is provided
	ErrNilService = HandlerError("deathroll service is required")

	// ErrNilUUIDGenerator is returned when no uuid generator is provided
	ErrNilUUIDGenerator = HandlerError("uuid generator is required")
)

// Config holds the websocket handler dependencies
type Config struct {
	Hub           *Hub
	Service       deathroll.Service
	UUIDGenerator uuid.UUID
}

// Handler upgrades connections and feeds inbound frames to the match
// engine. All player-facing replies come from the engine through the hub;
// the handler itself only logs.
type Handler struct {
	hub           *Hub
	service       deathroll.Service
	uuidGenerator uuid.UUID
	upgrader      websocket.Upgrader
}

// NewHandler creates a new websocket handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Hub == nil {
		return nil, ErrNilHub
	}
	if cfg.Service == nil {
		return nil, ErrNilService
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Handler{
		hub:           cfg.Hub,
		service:       cfg.Service,
		uuidGenerator: cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP upgrades the request and starts the connection's pumps
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	client := newClient(h.uuidGenerator.NewUUID(), conn)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump(h)
}

// dispatch routes one inbound frame to the engine
func (h *Handler) dispatch(connID string, raw []byte) {
	ctx := context.Background()

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		h.hub.Unicast(connID, models.EventSystem, "Malformed message.")
		return
	}

	switch env.Event {
	case models.EventQueue:
		if _, err := h.service.Enqueue(ctx, &deathroll.EnqueueInput{ConnID: connID}); err != nil {
			h.logEngineError(connID, env.Event, err)
		}

	case models.EventBet:
		amount, err := intFromJSON(env.Data)
		if err != nil {
			h.hub.Unicast(connID, models.EventSystem, "Bet amount must be a whole number.")
			return
		}
		if _, err := h.service.PlaceBet(ctx, &deathroll.PlaceBetInput{ConnID: connID, Amount: amount}); err != nil {
			h.logEngineError(connID, env.Event, err)
		}

	case models.EventRoll:
		max, err := intFromJSON(env.Data)
		if err != nil {
			h.hub.Unicast(connID, models.EventSystem, "Roll range must be a whole number.")
			return
		}
		if _, err := h.service.Roll(ctx, &deathroll.RollInput{ConnID: connID, RequestedMax: max}); err != nil {
			h.logEngineError(connID, env.Event, err)
		}

	case models.EventChat:
		text, ok := env.Data.(string)
		if !ok {
			h.hub.Unicast(connID, models.EventSystem, "Chat text must be a string.")
			return
		}
		if _, err := h.service.Chat(ctx, &deathroll.ChatInput{ConnID: connID, Text: text}); err != nil {
			h.logEngineError(connID, env.Event, err)
		}

	default:
		h.hub.Unicast(connID, models.EventSystem, "Unknown event.")
	}
}

// handleDisconnect releases the connection's game state and drops it from
// the hub
func (h *Handler) handleDisconnect(connID string) {
	if _, err := h.service.Disconnect(context.Background(), &deathroll.DisconnectInput{ConnID: connID}); err != nil {
		log.Printf("disconnect cleanup for %s failed: %v", connID, err)
	}
	h.hub.Unregister(connID)
}

// logEngineError records engine rejections. The engine has already told the
// player what went wrong; rule violations are routine, not faults.
func (h *Handler) logEngineError(connID, event string, err error) {
	var matchErr deathroll.MatchError
	if errors.As(err, &matchErr) {
		return
	}
	log.Printf("%s from %s failed: %v", event, connID, err)
}

var errNotAWholeNumber = errors.New("not a whole number")

// intFromJSON coerces a decoded JSON value to an int. JSON numbers arrive
// as float64; anything fractional or non-numeric is rejected.
func intFromJSON(v any) (int, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, errNotAWholeNumber
	}
	n := int(f)
	if float64(n) != f {
		return 0, errNotAWholeNumber
	}
	return n, nil
}
