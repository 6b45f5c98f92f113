// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/fairdraw/internal/domain/draw"
)

// drawRequest mirrors the POST /draws body.
type drawRequest struct {
	Link string `json:"link"`
}

func (r drawRequest) validate() error {
	if strings.TrimSpace(r.Link) == "" {
		return errors.New("missing link")
	}
	return nil
}

// errorResponse is the JSON error envelope with a stable code.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DrawsHandler handles draw execution requests.
type DrawsHandler struct {
	deps Dependencies
}

// NewDrawsHandler creates a new draws handler.
func NewDrawsHandler(deps Dependencies) *DrawsHandler {
	return &DrawsHandler{deps: deps}
}

// HandleRunDraw handles POST /draws. The response body is the DrawResult
// wire shape; progress strings emitted by the pipeline are counted in the
// X-Draw-Steps header and otherwise observational only.
func (h *DrawsHandler) HandleRunDraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req drawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, draw.CodeInvalidInput, "malformed request body")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, draw.CodeInvalidInput, err.Error())
		return
	}

	steps := 0
	result, err := h.deps.RunDraw(r.Context(), req.Link, func(string) { steps++ })
	if err != nil {
		writeError(w, statusForCode(draw.CodeOf(err)), draw.CodeOf(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Draw-Steps", strconv.Itoa(steps))
	_ = json.NewEncoder(w).Encode(result)
}

// statusForCode maps stable draw error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case draw.CodeInvalidLink, draw.CodeInvalidInput:
		return http.StatusBadRequest
	case draw.CodeInsufficientParticipants:
		return http.StatusConflict
	case draw.CodeAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Code: code, Message: message}})
}
