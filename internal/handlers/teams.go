package handlers

import (
	"net/http"

	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/teams"
)

// TeamsHandler serves team search.
type TeamsHandler struct {
	logger *common.Logger
}

// NewTeamsHandler creates a new team search handler.
func NewTeamsHandler(logger *common.Logger) *TeamsHandler {
	return &TeamsHandler{logger: logger}
}

// ServeHTTP handles GET /teams/search?q=.
func (h *TeamsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteSuccess(w, teams.Search(r.URL.Query().Get("q")), nil)
}
