package main

import (
	"errors"
	"net/http"
	"strconv"

	"profrate/internal/domain/doctors"

	"github.com/go-chi/chi/v5"
)

type CreateDoctorPayload struct {
	FirstName  string  `json:"first_name" validate:"required,max=50"`
	LastName   string  `json:"last_name" validate:"required,max=50"`
	Title      string  `json:"title" validate:"required,max=50"`
	Department string  `json:"department" validate:"required,max=100"`
	Faculty    string  `json:"faculty" validate:"required,max=100"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`
}

// adminCreateDoctorHandler godoc
//
//	@Summary		Create a doctor
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateDoctorPayload	true	"Doctor details"
//	@Success		201		{object}	doctors.Doctor
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/doctors [post]
func (app *application) adminCreateDoctorHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateDoctorPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	doctor := &doctors.Doctor{
		FirstName:  payload.FirstName,
		LastName:   payload.LastName,
		Title:      payload.Title,
		Department: payload.Department,
		Faculty:    payload.Faculty,
		Bio:        payload.Bio,
	}

	if err := app.store.Doctors.Create(r.Context(), doctor); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, doctor); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateDoctorPayload struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name" validate:"omitempty,max=50"`
	Title      *string `json:"title" validate:"omitempty,max=50"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Faculty    *string `json:"faculty" validate:"omitempty,max=100"`
	Bio        *string `json:"bio" validate:"omitempty,max=2000"`
}

// adminUpdateDoctorHandler godoc
//
//	@Summary		Update a doctor
//	@Description	Partially updates a doctor record; only the provided fields change.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			doctorID	path		int					true	"Doctor ID"
//	@Param			payload		body		UpdateDoctorPayload	true	"Fields to update"
//	@Success		200			{object}	doctors.DoctorDetail
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/doctors/{doctorID} [patch]
func (app *application) adminUpdateDoctorHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	var payload UpdateDoctorPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	updates := map[string]interface{}{}
	if payload.FirstName != nil {
		updates["first_name"] = *payload.FirstName
	}
	if payload.LastName != nil {
		updates["last_name"] = *payload.LastName
	}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Department != nil {
		updates["department"] = *payload.Department
	}
	if payload.Faculty != nil {
		updates["faculty"] = *payload.Faculty
	}
	if payload.Bio != nil {
		updates["bio"] = *payload.Bio
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	ctx := r.Context()

	if err := app.store.Doctors.Update(ctx, doctorID, updates); err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	detail, err := app.store.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminDeleteDoctorHandler godoc
//
//	@Summary		Delete a doctor
//	@Description	Removes the doctor along with their reviews and aggregate.
//	@Tags			admin
//	@Param			doctorID	path		int		true	"Doctor ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/doctors/{doctorID} [delete]
func (app *application) adminDeleteDoctorHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	ctx := r.Context()

	if photoURL, err := app.store.Doctors.GetPhotoURL(ctx, doctorID); err == nil && photoURL != nil && *photoURL != "" {
		if err := app.deleteFromCloudinary(ctx, *photoURL); err != nil {
			app.logger.Warnw("failed to delete doctor photo", "doctor_id", doctorID, "error", err)
		}
	}

	if err := app.store.Doctors.Delete(ctx, doctorID); err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// adminUploadDoctorPhotoHandler godoc
//
//	@Summary		Upload doctor photo
//	@Tags			admin
//	@Accept			mpfd
//	@Produce		json
//	@Param			doctorID	path		int		true	"Doctor ID"
//	@Param			photo		file		true	"Photo image"
//	@Success		200			{object}	map[string]string	"Photo URL"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/doctors/{doctorID}/photo [post]
func (app *application) adminUploadDoctorPhotoHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
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

	file, header, err := r.FormFile("photo")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid file upload"))
		return
	}
	defer file.Close()

	if oldURL, err := app.store.Doctors.GetPhotoURL(ctx, doctorID); err == nil && oldURL != nil && *oldURL != "" {
		if err := app.deleteFromCloudinary(ctx, *oldURL); err != nil {
			app.logger.Warnw("failed to delete old doctor photo", "doctor_id", doctorID, "error", err)
		}
	}

	uploadedURL, err := app.uploadToCloudinary(ctx, file, header.Filename, doctorFolder)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Doctors.SetPhotoURL(ctx, doctorID, &uploadedURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"photo_url": uploadedURL}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adminDeleteDoctorPhotoHandler godoc
//
//	@Summary		Delete doctor photo
//	@Tags			admin
//	@Param			doctorID	path		int		true	"Doctor ID"
//	@Success		204			{string}	string	"No Content"
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/doctors/{doctorID}/photo [delete]
func (app *application) adminDeleteDoctorPhotoHandler(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid doctor ID"))
		return
	}

	ctx := r.Context()

	photoURL, err := app.store.Doctors.GetPhotoURL(ctx, doctorID)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if photoURL != nil && *photoURL != "" {
		if err := app.deleteFromCloudinary(ctx, *photoURL); err != nil {
			app.logger.Warnw("failed to delete doctor photo", "doctor_id", doctorID, "error", err)
		}
	}

	if err := app.store.Doctors.SetPhotoURL(ctx, doctorID, nil); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
