package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"profrate/internal/domain/sessions"
	"profrate/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func parseAccessClaims(token *jwt.Token) (userID int64, role, sessionID string, err error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", "", errors.New("invalid claims")
	}

	userID, err = strconv.ParseInt(fmt.Sprintf("%.f", claims["sub"]), 10, 64)
	if err != nil {
		return 0, "", "", err
	}

	role, _ = claims["role"].(string)
	sessionID, _ = claims["sid"].(string)

	return userID, role, sessionID, nil
}

// rotateCSRF mints a fresh CSRF token and stores its hash on the session.
func (app *application) rotateCSRF(r *http.Request, sessionID string) (string, error) {
	csrfToken := uuid.New().String()
	if err := app.store.Sessions.SetCSRF(r.Context(), sessionID, sessions.HashToken(csrfToken)); err != nil {
		return "", err
	}
	return csrfToken, nil
}

// setAuthCookies installs the HttpOnly token pair. The csrf_token cookie is
// readable by the frontend so it can echo it back in X-CSRF-Token.
func (app *application) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	secure := app.config.env == "production"

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.config.auth.token.accessTokenExp.Seconds()),
	})

	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/v1/auth",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.config.auth.token.refreshTokenExp.Seconds()),
	})
}

func (app *application) setCSRFCookie(w http.ResponseWriter, csrfToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "csrf_token",
		Value:    csrfToken,
		Path:     "/",
		HttpOnly: false,
		Secure:   app.config.env == "production",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(app.config.auth.token.refreshTokenExp.Seconds()),
	})
}

func (app *application) clearAuthCookies(w http.ResponseWriter) {
	expired := func(name, path string, httpOnly bool) *http.Cookie {
		return &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     path,
			HttpOnly: httpOnly,
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
		}
	}

	http.SetCookie(w, expired("access_token", "/", true))
	http.SetCookie(w, expired("refresh_token", "/v1/auth", true))
	http.SetCookie(w, expired("csrf_token", "/", false))
}

// SessionResponse is what the frontend polls to decide whether it is logged in.
type SessionResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// createTokenCookieHandler godoc
//
//	@Summary		Login with cookies
//	@Description	Verifies credentials and sets HttpOnly access/refresh cookies plus a readable csrf_token cookie.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateUserTokenPayload	true	"User credentials"
//	@Success		200		{object}	SessionResponse			"Session info"
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Router			/auth/login [post]
func (app *application) createTokenCookieHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateUserTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.store.Users.GetByEmail(r.Context(), payload.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			app.unauthorizedErrorResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := user.Password.Compare(payload.Password); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	accessToken, refreshToken, csrfToken, role, err := app.startSession(r, user)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setAuthCookies(w, accessToken, refreshToken)
	app.setCSRFCookie(w, csrfToken)

	response := SessionResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FirstName + " " + user.LastName,
		Role:   role,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// sessionHandler godoc
//
//	@Summary		Current session info
//	@Description	Returns the logged-in user for cookie clients; 401 when the access cookie is absent or stale.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	SessionResponse	"Session info"
//	@Failure		401	{object}	error
//	@Router			/auth/session [get]
func (app *application) sessionHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("access_token")
	if err != nil || cookie.Value == "" {
		app.unauthorizedErrorResponse(w, r, errors.New("no session"))
		return
	}

	token, err := app.authenticator.ValidateAccessToken(cookie.Value)
	if err != nil || !token.Valid {
		app.unauthorizedErrorResponse(w, r, errors.New("no session"))
		return
	}

	userID, role, _, err := parseAccessClaims(token)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	user, err := app.store.Users.GetByID(r.Context(), userID)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	response := SessionResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.FirstName + " " + user.LastName,
		Role:   role,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// csrfTokenHandler godoc
//
//	@Summary		Rotate the CSRF token
//	@Description	Issues a fresh CSRF token for the current session and sets it as a readable cookie.
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string	"CSRF token"
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/auth/csrf [get]
func (app *application) csrfTokenHandler(w http.ResponseWriter, r *http.Request) {
	claims := getClaimsFromContext(r)
	if claims == nil {
		app.unauthorizedErrorResponse(w, r, errors.New("not authorized"))
		return
	}

	csrfToken, err := app.rotateCSRF(r, claims.sessionID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.setCSRFCookie(w, csrfToken)

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"csrf_token": csrfToken}); err != nil {
		app.internalServerError(w, r, err)
	}
}
