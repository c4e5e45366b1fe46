package httptransport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"demonym/internal/person/models"
	"demonym/internal/person/service"
	"demonym/internal/sentinel"
	httpjson "demonym/internal/transport/http/json"
	"demonym/pkg/nationality"
)

// Handler is the thin HTTP layer. It delegates to the person service so
// transport concerns stay isolated from business logic.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewHandler wires the HTTP handler.
func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// handleListNationalities serves the full choice list for dropdown rendering.
func (h *Handler) handleListNationalities(w http.ResponseWriter, _ *http.Request) {
	httpjson.WriteJSON(w, http.StatusOK, map[string]any{
		"nationalities": nationality.Choices(),
	})
}

// handleResolveNationality resolves a code to its display name. An unknown
// code is a 404 at the HTTP boundary; the lookup itself never errors.
func (h *Handler) handleResolveNationality(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "code"))

	name, ok := h.svc.ResolveName(r.Context(), code)
	if !ok {
		httpjson.WriteError(w, http.StatusNotFound, "unknown_nationality",
			"no nationality is recorded for this code")
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, nationality.Entry{Code: code, Name: name})
}

func (h *Handler) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	p, err := h.svc.CreatePerson(r.Context(), &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusCreated, p.ToResponse())
}

func (h *Handler) handleGetPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid_id", "person id must be a UUID")
		return
	}

	p, err := h.svc.GetPerson(r.Context(), personID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpjson.WriteJSON(w, http.StatusOK, p.ToResponse())
}

func (h *Handler) handleListPersons(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("nationality")))

	persons, err := h.svc.ListPersons(r.Context(), code)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := make([]models.PersonResponse, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.ToResponse())
	}
	httpjson.WriteJSON(w, http.StatusOK, map[string]any{"persons": out})
}

// writeError translates sentinel errors into HTTP responses exactly once.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "not_found", "person not found")
	case errors.Is(err, sentinel.ErrInvalidInput):
		httpjson.WriteError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			"error", err,
			"path", r.URL.Path,
		)
		httpjson.WriteError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
