package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"profrate/internal/domain/doctors"
	"profrate/internal/params"

	"github.com/go-chi/chi/v5"
)

// DoctorListResponse is the paginated browse payload.
type DoctorListResponse struct {
	Doctors    []doctors.DoctorListing `json:"doctors"`
	Pagination params.Pagination       `json:"pagination"`
}

// listDoctorsHandler godoc
//
//	@Summary		Browse doctors
//	@Description	Lists doctors with their rating summaries. Supports search, department filter, sorting and pagination.
//	@Tags			doctors
//	@Produce		json
//	@Param			search		query		string	false	"Matches first or last name"
//	@Param			department	query		string	false	"Exact department"
//	@Param			sort		query		string	false	"rating | reviews | name (default rating)"
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size (max 50)"
//	@Success		200			{object}	DoctorListResponse
//	@Failure		500			{object}	error
//	@Router			/doctors [get]
func (app *application) listDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	filter := doctors.Filter{
		Sort:  "rating",
		Page:  p.Page,
		Limit: p.Limit,
	}

	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filter.Search = &search
	}
	if dept := strings.TrimSpace(q.Get("department")); dept != "" {
		filter.Department = &dept
	}
	switch q.Get("sort") {
	case "reviews":
		filter.Sort = "reviews"
	case "name":
		filter.Sort = "name"
	}

	result, err := app.store.Doctors.List(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(result.Total)

	response := DoctorListResponse{
		Doctors:    result.Doctors,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// topRatedDoctorsHandler godoc
//
//	@Summary		Top rated doctors
//	@Description	Returns the highest rated doctors with at least three reviews.
//	@Tags			doctors
//	@Produce		json
//	@Param			limit	query		int	false	"Number of doctors (default 10, max 50)"
//	@Success		200		{object}	[]doctors.DoctorListing
//	@Failure		500		{object}	error
//	@Router			/doctors/top [get]
func (app *application) topRatedDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	// a single review should not put a doctor on the leaderboard
	const minReviews = 3

	top, err := app.store.Doctors.TopRated(r.Context(), limit, minReviews)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, top); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listDepartmentsHandler godoc
//
//	@Summary		List departments
//	@Tags			doctors
//	@Produce		json
//	@Success		200	{object}	[]string
//	@Failure		500	{object}	error
//	@Router			/doctors/departments [get]
func (app *application) listDepartmentsHandler(w http.ResponseWriter, r *http.Request) {
	departments, err := app.store.Doctors.Departments(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, departments); err != nil {
		app.internalServerError(w, r, err)
	}
}

// compareDoctorsHandler godoc
//
//	@Summary		Compare doctors
//	@Description	Returns detail plus rating summary for 2 to 4 doctors, in request order.
//	@Tags			doctors
//	@Produce		json
//	@Param			ids	query		string	true	"Comma separated doctor IDs, e.g. ids=3,17,25"
//	@Success		200	{object}	[]doctors.DoctorDetail
//	@Failure		400	{object}	error
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/doctors/compare [get]
func (app *application) compareDoctorsHandler(w http.ResponseWriter, r *http.Request) {
	raw := strings.Split(r.URL.Query().Get("ids"), ",")

	ids := make([]int64, 0, len(raw))
	seen := make(map[int64]bool)
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil || id < 1 {
			app.badRequestResponse(w, r, errors.New("ids must be positive integers"))
			return
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) < 2 || len(ids) > 4 {
		app.badRequestResponse(w, r, errors.New("compare takes between 2 and 4 distinct doctor ids"))
		return
	}

	details, err := app.store.Doctors.Compare(r.Context(), ids)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, details); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getDoctorHandler godoc
//
//	@Summary		Doctor detail
//	@Tags			doctors
//	@Produce		json
//	@Param			doctorID	path		int	true	"Doctor ID"
//	@Success		200			{object}	doctors.DoctorDetail
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/doctors/{doctorID} [get]
func (app *application) getDoctorHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	detail, err := app.store.Doctors.GetByID(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// PublicReview is the anonymized shape of a review on the doctor page.
type PublicReview struct {
	ID            int64     `json:"id"`
	Reviewer      string    `json:"reviewer"`
	Teaching      int       `json:"teaching"`
	Availability  int       `json:"availability"`
	Communication int       `json:"communication"`
	Knowledge     int       `json:"knowledge"`
	Fairness      int       `json:"fairness"`
	Overall       float64   `json:"overall"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// DoctorReviewsResponse is the paginated review list for one doctor.
type DoctorReviewsResponse struct {
	Reviews    []PublicReview    `json:"reviews"`
	Pagination params.Pagination `json:"pagination"`
}

// getDoctorReviewsHandler godoc
//
//	@Summary		Doctor reviews
//	@Description	Lists a doctor's reviews newest first. Reviewers appear under stable anonymous handles.
//	@Tags			doctors
//	@Produce		json
//	@Param			doctorID	path		int	true	"Doctor ID"
//	@Param			page		query		int	false	"Page number"
//	@Param			limit		query		int	false	"Page size (max 50)"
//	@Success		200			{object}	DoctorReviewsResponse
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/doctors/{doctorID}/reviews [get]
func (app *application) getDoctorReviewsHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	exists, err := app.store.Doctors.Exists(r.Context(), doctorID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponse(w, r, doctors.ErrDoctorNotFound)
		return
	}

	p := params.ParsePagination(r.URL.Query())

	result, err := app.store.Reviews.ListByDoctor(r.Context(), doctorID, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(result.Total)

	public := make([]PublicReview, 0, len(result.Reviews))
	for i := range result.Reviews {
		rv := &result.Reviews[i]
		public = append(public, PublicReview{
			ID:            rv.ID,
			Reviewer:      app.anon.Handle(rv.UserID, rv.DoctorID),
			Teaching:      rv.Teaching,
			Availability:  rv.Availability,
			Communication: rv.Communication,
			Knowledge:     rv.Knowledge,
			Fairness:      rv.Fairness,
			Overall:       rv.Overall(),
			Comment:       rv.Comment,
			CreatedAt:     rv.CreatedAt,
		})
	}

	response := DoctorReviewsResponse{
		Reviews:    public,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
