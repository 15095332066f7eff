package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"profrate/internal/domain/accesscontrol"
	"profrate/internal/domain/users"
	"profrate/internal/params"

	"github.com/go-chi/chi/v5"
)

// AdminUserListResponse is the paginated admin user table.
type AdminUserListResponse struct {
	Users      []users.AdminUserRow `json:"users"`
	Pagination params.Pagination    `json:"pagination"`
}

// adminListUsersHandler godoc
//
//	@Summary		List users
//	@Description	Lists all users with roles and review counts. Filterable by role, active flag and a name/email search.
//	@Tags			admin
//	@Produce		json
//	@Param			role		query		string	false	"student | teacher | admin"
//	@Param			is_active	query		bool	false	"Filter on active flag"
//	@Param			search		query		string	false	"Matches name or email"
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size (max 50)"
//	@Success		200			{object}	AdminUserListResponse
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users [get]
func (app *application) adminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.ParsePagination(q)

	var filters users.AdminListFilters

	if role := q.Get("role"); role != "" {
		switch role {
		case string(accesscontrol.RoleStudent), string(accesscontrol.RoleTeacher), string(accesscontrol.RoleAdmin):
			filters.Role = &role
		default:
			app.badRequestResponse(w, r, errors.New("unknown role filter"))
			return
		}
	}

	if activeStr := q.Get("is_active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			app.badRequestResponse(w, r, errors.New("is_active must be a boolean"))
			return
		}
		filters.IsActive = &active
	}

	if search := strings.TrimSpace(q.Get("search")); search != "" {
		filters.Search = &search
	}

	rows, total, err := app.store.Users.ListAdmin(r.Context(), filters, p.Limit, p.Offset)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	response := AdminUserListResponse{
		Users:      rows,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AdminCreateUserPayload struct {
	FirstName  string `json:"first_name" validate:"required,max=50"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=72"`
	Role       string `json:"role" validate:"required,oneof=student teacher admin"`
}

// adminCreateUserHandler godoc
//
//	@Summary		Create a user
//	@Description	Creates a pre-activated account with the given role; no invitation email is sent.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		AdminCreateUserPayload	true	"User details"
//	@Success		201		{object}	users.User
//	@Failure		400		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users [post]
func (app *application) adminCreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload AdminCreateUserPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := &users.User{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
	}
	if payload.Department != "" {
		user.Department.String = payload.Department
		user.Department.Valid = true
	}

	if err := user.Password.Set(payload.Password); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	ctx := r.Context()

	created, err := app.store.Users.AdminCreateUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrDuplicateEmail):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.store.AccessControl.AssignRole(ctx, created.ID, payload.Role); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, created); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) setUserActive(w http.ResponseWriter, r *http.Request, active bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid user ID"))
		return
	}

	// an admin locking themselves out helps nobody
	if caller := getUserFromContext(r); !active && caller != nil && caller.ID == userID {
		app.badRequestResponse(w, r, errors.New("cannot deactivate your own account"))
		return
	}

	ctx := r.Context()

	if err := app.store.Users.SetActive(ctx, userID, active); err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if !active {
		if err := app.store.Sessions.RevokeAllForUser(ctx, userID); err != nil {
			app.logger.Warnw("failed to revoke sessions on deactivate", "user_id", userID, "error", err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// adminActivateUserHandler godoc
//
//	@Summary		Activate a user
//	@Tags			admin
//	@Param			userID	path		int		true	"User ID"
//	@Success		204		{string}	string	"No Content"
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/activate [put]
func (app *application) adminActivateUserHandler(w http.ResponseWriter, r *http.Request) {
	app.setUserActive(w, r, true)
}

// adminDeactivateUserHandler godoc
//
//	@Summary		Deactivate a user
//	@Description	Deactivates the account and revokes all of its sessions.
//	@Tags			admin
//	@Param			userID	path		int		true	"User ID"
//	@Success		204		{string}	string	"No Content"
//	@Failure		400		{object}	error	"Attempt to deactivate yourself"
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/deactivate [put]
func (app *application) adminDeactivateUserHandler(w http.ResponseWriter, r *http.Request) {
	app.setUserActive(w, r, false)
}

type AssignRolePayload struct {
	Role string `json:"role" validate:"required,oneof=student teacher admin"`
}

// adminAssignRoleHandler godoc
//
//	@Summary		Assign a role
//	@Tags			admin
//	@Accept			json
//	@Param			userID	path		int					true	"User ID"
//	@Param			payload	body		AssignRolePayload	true	"Role to assign"
//	@Success		204		{string}	string				"No Content"
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/roles [post]
func (app *application) adminAssignRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid user ID"))
		return
	}

	var payload AssignRolePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.store.AccessControl.AssignRole(r.Context(), userID, payload.Role); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// adminRemoveRoleHandler godoc
//
//	@Summary		Remove a role
//	@Tags			admin
//	@Param			userID	path		int		true	"User ID"
//	@Param			role	path		string	true	"Role name"
//	@Success		204		{string}	string	"No Content"
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/users/{userID}/roles/{role} [delete]
func (app *application) adminRemoveRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid user ID"))
		return
	}

	role := chi.URLParam(r, "role")

	// stripping your own admin role mid-session invites surprises
	if caller := getUserFromContext(r); caller != nil && caller.ID == userID && role == string(accesscontrol.RoleAdmin) {
		app.badRequestResponse(w, r, errors.New("cannot remove your own admin role"))
		return
	}

	if err := app.store.AccessControl.RemoveRole(r.Context(), userID, role); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
