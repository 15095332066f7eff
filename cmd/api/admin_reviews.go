package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"profrate/internal/domain/reviews"
	"profrate/internal/params"

	"github.com/go-chi/chi/v5"
)

// AdminReviewListResponse is the paginated moderation table.
type AdminReviewListResponse struct {
	Reviews    []reviews.AdminRow `json:"reviews"`
	Pagination params.Pagination  `json:"pagination"`
}

// adminListReviewsHandler godoc
//
//	@Summary		List reviews for moderation
//	@Description	Lists reviews with author identity. Filterable by doctor and overall score range.
//	@Tags			admin
//	@Produce		json
//	@Param			doctor_id	query		int		false	"Filter on one doctor"
//	@Param			min_overall	query		number	false	"Lower bound on overall score"
//	@Param			max_overall	query		number	false	"Upper bound on overall score"
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size (max 50)"
//	@Success		200			{object}	AdminReviewListResponse
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews [get]
func (app *application) adminListReviewsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	var filter reviews.AdminFilter

	if idStr := q.Get("doctor_id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id < 1 {
			app.badRequestResponse(w, r, errors.New("doctor_id must be a positive integer"))
			return
		}
		filter.DoctorID = &id
	}

	parseScore := func(key string) (*float64, error) {
		s := q.Get(key)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < 1 || v > 5 {
			return nil, fmt.Errorf("%s must be a number between 1 and 5", key)
		}
		return &v, nil
	}

	var err error
	if filter.MinOverall, err = parseScore("min_overall"); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if filter.MaxOverall, err = parseScore("max_overall"); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rows, total, err := app.store.Reviews.AdminList(r.Context(), filter, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	response := AdminReviewListResponse{
		Reviews:    rows,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminExportReviewsHandler godoc
//
//	@Summary		Export reviews as CSV
//	@Description	Streams every review as a CSV download. Author identity stays out of the export.
//	@Tags			admin
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV file"
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/export [get]
func (app *application) adminExportReviewsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := app.store.Reviews.AllForExport(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	filename := fmt.Sprintf("reviews-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	cw := csv.NewWriter(w)

	header := []string{"id", "doctor", "department", "teaching", "availability", "communication", "knowledge", "fairness", "comment", "created_at"}
	if err := cw.Write(header); err != nil {
		app.logger.Errorw("csv export failed", "error", err)
		return
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.DoctorName,
			row.Department,
			strconv.Itoa(row.Teaching),
			strconv.Itoa(row.Availability),
			strconv.Itoa(row.Communication),
			strconv.Itoa(row.Knowledge),
			strconv.Itoa(row.Fairness),
			row.Comment,
			row.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			app.logger.Errorw("csv export failed", "error", err)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		app.logger.Errorw("csv export failed", "error", err)
	}
}

// adminDeleteReviewHandler godoc
//
//	@Summary		Delete any review
//	@Description	Removes a review regardless of author and recomputes the doctor aggregate.
//	@Tags			admin
//	@Param			reviewID	path		int		true	"Review ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/reviews/{reviewID} [delete]
func (app *application) adminDeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	if err := app.store.Reviews.AdminDelete(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
