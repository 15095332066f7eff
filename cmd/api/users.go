package main

import (
	"errors"
	"net/http"
)

// getCurrentUserHandler godoc
//
//	@Summary		Current user profile
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	users.User	"User profile"
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateUserPayload struct {
	FirstName  *string `json:"first_name" validate:"omitempty,max=50"`
	LastName   *string `json:"last_name" validate:"omitempty,max=50"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// updateUserHandler godoc
//
//	@Summary		Update own profile
//	@Description	Updates name or department for the logged-in user. Only the provided fields change.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateUserPayload	true	"Fields to update"
//	@Success		200		{object}	map[string]string	"Updated"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users [put]
func (app *application) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	var payload UpdateUserPayload
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
	if payload.Department != nil {
		updates["department"] = *payload.Department
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	if err := app.store.Users.UpdateUser(r.Context(), user.ID, updates); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "profile updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadAvatarHandler godoc
//
//	@Summary		Upload profile avatar
//	@Description	Accepts a multipart image, stores it in Cloudinary and saves the URL on the user.
//	@Tags			users
//	@Accept			mpfd
//	@Produce		json
//	@Param			avatar	file		true	"Avatar image"
//	@Success		200		{object}	map[string]string	"Avatar URL"
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/users/avatar [post]
func (app *application) uploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)
	if user == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid file upload"))
		return
	}
	defer file.Close()

	ctx := r.Context()

	// replace the previous avatar instead of piling up orphans
	if oldURL, err := app.store.Users.GetAvatarURL(ctx, user.ID); err == nil && oldURL != nil && *oldURL != "" {
		if err := app.deleteFromCloudinary(ctx, *oldURL); err != nil {
			app.logger.Warnw("failed to delete old avatar", "user_id", user.ID, "error", err)
		}
	}

	uploadedURL, err := app.uploadToCloudinary(ctx, file, header.Filename, avatarFolder)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Users.SetAvatar(ctx, uploadedURL, user.ID); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"avatar_url": uploadedURL}); err != nil {
		app.internalServerError(w, r, err)
	}
}
