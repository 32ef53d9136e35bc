package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchdaybr/campeonato-system/middleware"
	"github.com/matchdaybr/campeonato-system/services"
)

type CompetitionHandler struct {
	viewService    services.ViewService
	refreshService services.RefreshService
}

func NewCompetitionHandler(vs services.ViewService, rs services.RefreshService) *CompetitionHandler {
	return &CompetitionHandler{
		viewService:    vs,
		refreshService: rs,
	}
}

// GetViewHandler serves GET /competitions/{competitionID}/view: the full
// assembled view model for the competition's format.
func (h *CompetitionHandler) GetViewHandler(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		badRequestResponse(w, r, errors.New("missing competitionID"))
		return
	}

	view, err := h.viewService.GetCompetitionView(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"view": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStagesHandler serves GET /competitions/{competitionID}/stages.
func (h *CompetitionHandler) GetStagesHandler(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		badRequestResponse(w, r, errors.New("missing competitionID"))
		return
	}

	stages, err := h.viewService.GetStages(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stages": stages}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetKnockoutHandler serves GET /competitions/{competitionID}/knockout:
// either the projected placeholder bracket or the real knockout rounds,
// depending on how far the group stage has come.
func (h *CompetitionHandler) GetKnockoutHandler(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		badRequestResponse(w, r, errors.New("missing competitionID"))
		return
	}

	rounds, err := h.viewService.GetKnockoutRounds(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"knockout_rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RefreshHandler serves POST /competitions/{competitionID}/refresh.
// Organizer-only: busts the memo cache, re-fetches the backend payloads
// and pushes the fresh view to the competition's WebSocket room.
func (h *CompetitionHandler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	competitionID := chi.URLParam(r, "competitionID")
	if competitionID == "" {
		badRequestResponse(w, r, errors.New("missing competitionID"))
		return
	}

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		errorResponse(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	slog.Info("manual view refresh requested",
		slog.String("competition_id", competitionID),
		slog.String("user_id", userID))

	view, err := h.refreshService.RefreshNow(r.Context(), competitionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"view": view}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
