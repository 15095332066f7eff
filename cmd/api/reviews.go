package main

import (
	"errors"
	"net/http"
	"strconv"

	"profrate/internal/domain/doctors"
	"profrate/internal/domain/reviews"

	"github.com/go-chi/chi/v5"
)

type CreateReviewPayload struct {
	Teaching      int    `json:"teaching" validate:"required,factor"`
	Availability  int    `json:"availability" validate:"required,factor"`
	Communication int    `json:"communication" validate:"required,factor"`
	Knowledge     int    `json:"knowledge" validate:"required,factor"`
	Fairness      int    `json:"fairness" validate:"required,factor"`
	Comment       string `json:"comment" validate:"omitempty,max=1000"`
}

// createReviewHandler godoc
//
//	@Summary		Review a doctor
//	@Description	Submits a five-factor review. One review per student per doctor; only students may review.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			doctorID	path		int					true	"Doctor ID"
//	@Param			payload		body		CreateReviewPayload	true	"Review"
//	@Success		201			{object}	reviews.Review
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error	"Caller is not a student"
//	@Failure		404			{object}	error
//	@Failure		409			{object}	error	"Already reviewed"
//	@Security		ApiKeyAuth
//	@Router			/doctors/{doctorID}/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	claims := getClaimsFromContext(r)
	if user == nil || claims == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	// reviews come from students; teachers and admins browse only
	if claims.role != "student" {
		app.forbiddenResponse(w, r)
		return
	}

	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	exists, err := app.store.Doctors.Exists(ctx, doctorID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !exists {
		app.notFoundResponse(w, r, doctors.ErrDoctorNotFound)
		return
	}

	review := &reviews.Review{
		DoctorID:      doctorID,
		UserID:        user.ID,
		Teaching:      payload.Teaching,
		Availability:  payload.Availability,
		Communication: payload.Communication,
		Knowledge:     payload.Knowledge,
		Fairness:      payload.Fairness,
		Comment:       payload.Comment,
	}

	if err := app.store.Reviews.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, reviews.ErrDuplicateReview):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOwnReviewHandler godoc
//
//	@Summary		Own review for a doctor
//	@Description	Returns the caller's review of the given doctor, if any.
//	@Tags			reviews
//	@Produce		json
//	@Param			doctorID	path		int	true	"Doctor ID"
//	@Success		200			{object}	reviews.Review
//	@Failure		404			{object}	error	"No review yet"
//	@Security		ApiKeyAuth
//	@Router			/reviews/mine/{doctorID} [get]
func (app *application) getOwnReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	review, err := app.store.Reviews.GetByDoctorAndUser(r.Context(), doctorID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateReviewHandler godoc
//
//	@Summary		Update own review
//	@Description	Replaces the factors and comment of the caller's review; the doctor aggregate is recomputed.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		CreateReviewPayload	true	"New review content"
//	@Success		200			{object}	reviews.Review
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error	"Not the author"
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID} [put]
func (app *application) updateReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	review, err := app.store.Reviews.GetByID(ctx, reviewID)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if review.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	review.Teaching = payload.Teaching
	review.Availability = payload.Availability
	review.Communication = payload.Communication
	review.Knowledge = payload.Knowledge
	review.Fairness = payload.Fairness
	review.Comment = payload.Comment

	if err := app.store.Reviews.Update(ctx, review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteReviewHandler godoc
//
//	@Summary		Delete own review
//	@Tags			reviews
//	@Param			reviewID	path		int		true	"Review ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		404			{object}	error	"Not found or not the author"
//	@Security		ApiKeyAuth
//	@Router			/reviews/{reviewID} [delete]
func (app *application) deleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID, user.ID); err != nil {
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
