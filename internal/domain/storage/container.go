package storage

import (
	"profrate/internal/domain/accesscontrol"
	"profrate/internal/domain/admindashboard"
	"profrate/internal/domain/doctors"
	"profrate/internal/domain/ratings"
	"profrate/internal/domain/reviews"
	"profrate/internal/domain/sessions"
	"profrate/internal/domain/users"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	pool           *pgxpool.Pool
	Users          users.Store
	Doctors        doctors.Store
	Reviews        reviews.Store
	Ratings        ratings.Store
	Sessions       sessions.Store
	AccessControl  accesscontrol.Store
	AdminDashboard admindashboard.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		pool:           db,
		Users:          users.NewRepository(db),
		Doctors:        doctors.NewRepository(db),
		Reviews:        reviews.NewRepository(db),
		Ratings:        ratings.NewRepository(db),
		Sessions:       sessions.NewRepository(db),
		AccessControl:  accesscontrol.NewRepository(db),
		AdminDashboard: admindashboard.NewRepository(db),
	}
}
