package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/matchdaybr/campeonato-system/brackets"
)

// NamingHandler exposes the two round/phase naming utilities as
// standalone endpoints, so presentation code can ask "what should this
// span of rounds be called" without re-deriving team counts.
type NamingHandler struct{}

func NewNamingHandler() *NamingHandler {
	return &NamingHandler{}
}

// EliminationRoundNamesHandler serves
// GET /naming/elimination-rounds?total=N.
func (h *NamingHandler) EliminationRoundNamesHandler(w http.ResponseWriter, r *http.Request) {
	total, err := positiveIntQuery(r, "total")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	names := brackets.GenerateEliminationRoundNames(total)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"round_names": names}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// KnockoutPhasesHandler serves GET /naming/knockout-phases?teams=N.
func (h *NamingHandler) KnockoutPhasesHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := positiveIntQuery(r, "teams")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	phases := brackets.CalculateKnockoutPhases(teams)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"phases": phases}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func positiveIntQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, errors.New("missing " + key + " query parameter")
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, errors.New("invalid " + key + " query parameter")
	}
	return value, nil
}
