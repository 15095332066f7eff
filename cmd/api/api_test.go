package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"profrate/internal/auth"
	"profrate/internal/domain/doctors"
	"profrate/internal/domain/reviews"
	"profrate/internal/domain/sessions"
	"profrate/internal/domain/storage"
	"profrate/internal/domain/users"
	"profrate/internal/ratelimiter"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stub stores embed their interface so only the methods a test exercises need
// an implementation; anything else panics loudly.

type stubUserStore struct {
	users.Store
	user *users.User
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return s.user, nil
}

type stubSessionStore struct {
	sessions.Store
	session *sessions.Session
	revoked bool
}

func (s *stubSessionStore) GetByID(ctx context.Context, sessionID string) (*sessions.Session, error) {
	return s.session, nil
}

func (s *stubSessionStore) Revoke(ctx context.Context, sessionID string) error {
	s.revoked = true
	return nil
}

type stubDoctorStore struct {
	doctors.Store
	detail *doctors.DoctorDetail
}

func (s *stubDoctorStore) Compare(ctx context.Context, ids []int64) ([]doctors.DoctorDetail, error) {
	details := make([]doctors.DoctorDetail, len(ids))
	for i := range ids {
		details[i] = *s.detail
		details[i].ID = ids[i]
	}
	return details, nil
}

func (s *stubDoctorStore) Exists(ctx context.Context, doctorID int64) (bool, error) {
	return true, nil
}

type stubReviewStore struct {
	reviews.Store
	createErr error
}

func (s *stubReviewStore) Create(ctx context.Context, review *reviews.Review) error {
	if s.createErr != nil {
		return s.createErr
	}
	review.ID = 1
	review.CreatedAt = time.Now()
	review.UpdatedAt = time.Now()
	return nil
}

// stubAuthenticator hands back a fixed token for any input.
type stubAuthenticator struct {
	auth.Authenticator
	claims jwt.MapClaims
}

func (a *stubAuthenticator) ValidateAccessToken(token string) (*jwt.Token, error) {
	return &jwt.Token{Claims: a.claims, Valid: true}, nil
}

const (
	testSessionID = "0b44c9a5-4c6f-4b2d-9f58-6a1f9f1f2f3a"
	testCSRFToken = "plain-csrf-token"
)

func newTestApplication(t *testing.T) (*application, *stubSessionStore, *stubReviewStore) {
	t.Helper()

	anon, err := reviews.NewAnonymizer("test-salt")
	require.NoError(t, err)

	sessionStore := &stubSessionStore{
		session: &sessions.Session{
			ID:          testSessionID,
			UserID:      1,
			RefreshHash: sessions.HashToken("refresh"),
			CSRFHash:    sessions.HashToken(testCSRFToken),
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}

	reviewStore := &stubReviewStore{}

	app := &application{
		config: config{
			rateLimiter: ratelimiter.Config{Enabled: false},
		},
		logger: zap.NewNop().Sugar(),
		store: &storage.Container{
			Users:    &stubUserStore{user: &users.User{ID: 1, FirstName: "Test", Email: "t@u.edu", IsActive: true}},
			Sessions: sessionStore,
			Doctors:  &stubDoctorStore{detail: &doctors.DoctorDetail{Doctor: doctors.Doctor{FirstName: "Jane", LastName: "Doe"}}},
			Reviews:  reviewStore,
		},
		authenticator: &stubAuthenticator{
			claims: jwt.MapClaims{"sub": float64(1), "role": "student", "sid": testSessionID},
		},
		anon: anon,
	}

	return app, sessionStore, reviewStore
}

func TestLogoutRequiresCSRFForCookieClients(t *testing.T) {
	app, sessionStore, _ := newTestApplication(t)
	mux := app.mount()

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie.jwt"})
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, sessionStore.revoked, "session must survive a logout without a CSRF token")
}

func TestLogoutWithCSRFRevokesSession(t *testing.T) {
	app, sessionStore, _ := newTestApplication(t)
	mux := app.mount()

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie.jwt"})
	r.Header.Set("X-CSRF-Token", testCSRFToken)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, sessionStore.revoked)
}

func TestCompareDoctorsHandlerValidation(t *testing.T) {
	app, _, _ := newTestApplication(t)
	mux := app.mount()

	tests := []struct {
		name     string
		ids      string
		wantCode int
	}{
		{"missing ids", "", http.StatusBadRequest},
		{"single id", "1", http.StatusBadRequest},
		{"too many ids", "1,2,3,4,5", http.StatusBadRequest},
		{"malformed id", "1,x", http.StatusBadRequest},
		{"duplicates collapse below minimum", "1,1", http.StatusBadRequest},
		{"two ids", "1,2", http.StatusOK},
		{"four ids", "1,2,3,4", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/doctors/compare?ids="+tt.ids, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestCreateReviewDuplicateConflict(t *testing.T) {
	app, _, reviewStore := newTestApplication(t)
	reviewStore.createErr = reviews.ErrDuplicateReview
	mux := app.mount()

	body := `{"teaching":5,"availability":4,"communication":3,"knowledge":5,"fairness":4,"comment":"solid"}`
	r := httptest.NewRequest(http.MethodPost, "/v1/doctors/7/reviews", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer some.jwt")
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateReviewSucceeds(t *testing.T) {
	app, _, _ := newTestApplication(t)
	mux := app.mount()

	body := `{"teaching":5,"availability":4,"communication":3,"knowledge":5,"fairness":4,"comment":"solid"}`
	r := httptest.NewRequest(http.MethodPost, "/v1/doctors/7/reviews", strings.NewReader(body))
	r.Header.Set("Authorization", "Bearer some.jwt")
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)
}
