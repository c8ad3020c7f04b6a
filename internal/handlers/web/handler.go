package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/KirkDiggler/deathroll/internal/services/calc"
)

// HandlerError represents a handler configuration error
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

// ErrNilCalcService is returned when no calc service is provided
const ErrNilCalcService = HandlerError("calc service is required")

// Config holds the calculator handler dependencies
type Config struct {
	CalcService calc.Service
}

// Handler serves the calculator endpoints as JSON
type Handler struct {
	calcService calc.Service
}

// NewHandler creates a new calculator handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil || cfg.CalcService == nil {
		return nil, ErrNilCalcService
	}
	return &Handler{calcService: cfg.CalcService}, nil
}

// RegisterRoutes mounts the calculator endpoints on the mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/time", h.handleTime)
	mux.HandleFunc("/api/elapsed", h.handleElapsed)
	mux.HandleFunc("/api/resolution", h.handleResolution)
	mux.HandleFunc("/api/drives", h.handleDrives)
	mux.HandleFunc("/api/usable-space", h.handleUsableSpace)
	mux.HandleFunc("/api/darkmoon", h.handleDarkmoon)
}

type timeRequest struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

func (h *Handler) handleTime(w http.ResponseWriter, r *http.Request) {
	var req timeRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.ConvertTime(r.Context(), &calc.ConvertTimeInput{
		Value: req.Value,
		Unit:  req.Unit,
	})
	respond(w, out, err)
}

type elapsedRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (h *Handler) handleElapsed(w http.ResponseWriter, r *http.Request) {
	var req elapsedRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.ElapsedTime(r.Context(), &calc.ElapsedTimeInput{
		Start: req.Start,
		End:   req.End,
	})
	respond(w, out, err)
}

type resolutionRequest struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Scales []float64 `json:"scales"`
}

func (h *Handler) handleResolution(w http.ResponseWriter, r *http.Request) {
	var req resolutionRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.ScaleResolution(r.Context(), &calc.ScaleResolutionInput{
		Width:  req.Width,
		Height: req.Height,
		Scales: req.Scales,
	})
	respond(w, out, err)
}

type drivesRequest struct {
	Drives []calc.DriveSpec `json:"drives"`
}

func (h *Handler) handleDrives(w http.ResponseWriter, r *http.Request) {
	var req drivesRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.CompareDrives(r.Context(), &calc.CompareDrivesInput{
		Drives: req.Drives,
	})
	respond(w, out, err)
}

type usableSpaceRequest struct {
	CapacityValue   float64 `json:"capacity_value"`
	CapacityUnit    string  `json:"capacity_unit"`
	OverheadPercent float64 `json:"overhead_percent"`
	ReservedGB      float64 `json:"reserved_gb"`
}

func (h *Handler) handleUsableSpace(w http.ResponseWriter, r *http.Request) {
	var req usableSpaceRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.UsableSpace(r.Context(), &calc.UsableSpaceInput{
		CapacityValue:   req.CapacityValue,
		CapacityUnit:    req.CapacityUnit,
		OverheadPercent: req.OverheadPercent,
		ReservedGB:      req.ReservedGB,
	})
	respond(w, out, err)
}

type darkmoonRequest struct {
	Cards      int    `json:"cards"`
	Deck       string `json:"deck"`
	Difficulty string `json:"difficulty"`
}

func (h *Handler) handleDarkmoon(w http.ResponseWriter, r *http.Request) {
	var req darkmoonRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	out, err := h.calcService.DarkmoonLuck(r.Context(), &calc.DarkmoonLuckInput{
		Cards:      req.Cards,
		Deck:       req.Deck,
		Difficulty: req.Difficulty,
	})
	respond(w, out, err)
}

// decodeRequest enforces POST and parses the JSON body. A false return
// means the response has already been written.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func respond(w http.ResponseWriter, out any, err error) {
	if err != nil {
		var calcErr calc.CalcError
		if errors.As(err, &calcErr) {
			writeError(w, http.StatusBadRequest, calcErr.Error())
			return
		}
		log.Printf("calculator failed: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
