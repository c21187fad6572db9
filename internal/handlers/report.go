package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/scoutedge/scoutedge-api/internal/common"
	"github.com/scoutedge/scoutedge-api/internal/models"
	"github.com/scoutedge/scoutedge-api/internal/report"
)

// ReportGenerator produces a report for a generation request.
type ReportGenerator interface {
	Generate(ctx context.Context, req report.Request) (*models.Report, error)
}

// ReportRecorder receives every successfully generated report.
type ReportRecorder interface {
	Put(r *models.Report)
}

var errTrailingInput = errors.New("unexpected data after JSON object")

// generateBody mirrors report.Request with pointers so missing fields can be told apart from zero values.
type generateBody struct {
	TeamID *string `json:"teamId"`
	LastN  *int    `json:"lastN"`
	Mode   *string `json:"mode"`
}

// ReportHandler serves report generation.
type ReportHandler struct {
	logger    *common.Logger
	generator ReportGenerator
	recorder  ReportRecorder
}

// NewReportHandler creates a report generation handler. recorder may be nil.
func NewReportHandler(logger *common.Logger, generator ReportGenerator, recorder ReportRecorder) *ReportHandler {
	return &ReportHandler{
		logger:    logger,
		generator: generator,
		recorder:  recorder,
	}
}

// ServeHTTP handles POST /report/generate.
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var body generateBody
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&body)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errTrailingInput
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		WriteError(w, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return
	}
	switch {
	case body.TeamID == nil:
		WriteError(w, http.StatusUnprocessableEntity, "teamId is required")
		return
	case body.LastN == nil:
		WriteError(w, http.StatusUnprocessableEntity, "lastN is required")
		return
	case body.Mode == nil:
		WriteError(w, http.StatusUnprocessableEntity, "mode is required")
		return
	}

	req := report.Request{TeamID: *body.TeamID, LastN: *body.LastN, Mode: *body.Mode}

	rpt, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		h.writeGenerateError(w, req, err)
		return
	}

	if h.recorder != nil {
		h.recorder.Put(rpt)
	}

	h.logger.Info().
		Str("report_id", rpt.Metadata.ReportID).
		Str("team_id", req.TeamID).
		Int("last_n", req.LastN).
		Msg("report generated")

	WriteSuccess(w, rpt, &EnvelopeMeta{
		Cached:      false,
		GeneratedAt: rpt.Metadata.GeneratedAt,
	})
}

// writeGenerateError maps report errors onto HTTP statuses.
func (h *ReportHandler) writeGenerateError(w http.ResponseWriter, req report.Request, err error) {
	switch {
	case errors.Is(err, report.ErrModeNotImplemented):
		WriteError(w, http.StatusNotImplemented, report.LiveModeMessage)
	case errors.Is(err, report.ErrInvalidLastN), errors.Is(err, report.ErrInvalidTeamID):
		WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error().
			Str("team_id", req.TeamID).
			Int("last_n", req.LastN).
			Str("error", err.Error()).
			Msg("report generation failed")
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
