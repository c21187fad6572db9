package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/models"
)

// ReportStore looks up previously generated reports.
type ReportStore interface {
	Get(reportID string) (*models.Report, bool)
	List() []models.ReportSummary
}

// ReportsHandler serves the report history.
type ReportsHandler struct {
	logger *common.Logger
	store  ReportStore
}

// NewReportsHandler creates a report history handler.
func NewReportsHandler(logger *common.Logger, store ReportStore) *ReportsHandler {
	return &ReportsHandler{logger: logger, store: store}
}

// List handles GET /reports.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteSuccess(w, h.store.List(), nil)
}

// Get handles GET /reports/{reportId}.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := mux.Vars(r)["reportId"]
	rpt, ok := h.store.Get(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "report not found: "+id)
		return
	}
	WriteSuccess(w, rpt, nil)
}
