package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profrate/docs" // required to register swagger docs
	"profrate/internal/auth"
	"profrate/internal/domain/reviews"
	"profrate/internal/domain/storage"
	"profrate/internal/mailer"
	"profrate/internal/ratelimiter"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	cld           *cloudinary.Cloudinary
	mailer        mailer.Client
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	anon          *reviews.Anonymizer
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	frontendURL string
	auth        authConfig
	rateLimiter ratelimiter.Config
	anonSalt    string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret          string
	refreshSecret   string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	exp       time.Duration
	fromEmail string
	mailtrap  mailTrapConfig
}

type mailTrapConfig struct {
	apiKey string
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{app.config.frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	// Request context deadline; handlers observe ctx.Done() through pgx.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Put("/activate/{token}", app.activateUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/login", app.createTokenCookieHandler)
			r.Post("/refresh", app.refreshTokenHandler)
			r.Post("/reset-password", app.requestResetPasswordHandler)
			r.Patch("/reset-password", app.resetPasswordHandler)
			r.Get("/session", app.sessionHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.AuthTokenMiddleware)
				r.Use(app.CSRFMiddleware)
				r.Get("/csrf", app.csrfTokenHandler)
				r.Post("/logout", app.logoutHandler)
			})
		})

		// Public browse routes
		r.Route("/doctors", func(r chi.Router) {
			r.Get("/", app.listDoctorsHandler)
			r.Get("/top", app.topRatedDoctorsHandler)
			r.Get("/departments", app.listDepartmentsHandler)
			r.Get("/compare", app.compareDoctorsHandler)

			r.Route("/{doctorID}", func(r chi.Router) {
				r.Get("/", app.getDoctorHandler)
				r.Get("/reviews", app.getDoctorReviewsHandler)

				r.Group(func(r chi.Router) {
					r.Use(app.AuthTokenMiddleware)
					r.Use(app.CSRFMiddleware)
					r.Post("/reviews", app.createReviewHandler)
				})
			})
		})

		// Own-review management
		r.Route("/reviews", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.CSRFMiddleware)
			r.Get("/mine/{doctorID}", app.getOwnReviewHandler)
			r.Put("/{reviewID}", app.updateReviewHandler)
			r.Delete("/{reviewID}", app.deleteReviewHandler)
		})

		// Profile routes
		r.Route("/users", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.CSRFMiddleware)
			r.Get("/me", app.getCurrentUserHandler)
			r.Put("/", app.updateUserHandler)
			r.Post("/avatar", app.uploadAvatarHandler)
		})

		// Moderation dashboard
		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireRole("admin"))
			r.Use(app.CSRFMiddleware)

			r.Get("/overview", app.adminOverviewHandler)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", app.adminListUsersHandler)
				r.Post("/", app.adminCreateUserHandler)
				r.Put("/{userID}/activate", app.adminActivateUserHandler)
				r.Put("/{userID}/deactivate", app.adminDeactivateUserHandler)
				r.Post("/{userID}/roles", app.adminAssignRoleHandler)
				r.Delete("/{userID}/roles/{role}", app.adminRemoveRoleHandler)
			})

			r.Route("/doctors", func(r chi.Router) {
				r.Post("/", app.adminCreateDoctorHandler)
				r.Patch("/{doctorID}", app.adminUpdateDoctorHandler)
				r.Delete("/{doctorID}", app.adminDeleteDoctorHandler)
				r.Post("/{doctorID}/photo", app.adminUploadDoctorPhotoHandler)
				r.Delete("/{doctorID}/photo", app.adminDeleteDoctorPhotoHandler)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", app.adminListReviewsHandler)
				r.Get("/export", app.adminExportReviewsHandler)
				r.Delete("/{reviewID}", app.adminDeleteReviewHandler)
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
