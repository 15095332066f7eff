package users

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	ErrDuplicateEmail    = errors.New("a user with that email already exists")
	QueryTimeoutDuration = time.Second * 5
)

type User struct {
	ID                   int64       `json:"id"`
	FirstName            string      `json:"first_name"`
	LastName             string      `json:"last_name"`
	Email                string      `json:"email"`
	Password             password    `json:"-"`
	AvatarURL            pgtype.Text `json:"avatar_url" swaggertype:"string"`
	Department           pgtype.Text `json:"department" swaggertype:"string"`
	IsActive             bool        `json:"is_active"`
	ResetPasswordToken   string      `json:"-"`
	ResetPasswordExpires time.Time   `json:"-"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// password keeps the plaintext out of reach of JSON and logging.
type password struct {
	text *string `json:"-"`
	hash []byte  `json:"-"`
}

func (p *password) Set(text string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(text), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	p.text = &text
	p.hash = hash

	return nil
}

func (p *password) Compare(text string) error {
	return bcrypt.CompareHashAndPassword(p.hash, []byte(text))
}

// AdminListFilters narrows the admin user listing.
type AdminListFilters struct {
	Role     *string // student|teacher|admin
	IsActive *bool
	Search   *string // matches name or email
}

// AdminUserRow is one row of the admin user table, with its review count.
type AdminUserRow struct {
	ID          int64       `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Department  pgtype.Text `json:"department" swaggertype:"string"`
	IsActive    bool        `json:"is_active"`
	Roles       []string    `json:"roles"`
	ReviewCount int         `json:"review_count"`
	CreatedAt   time.Time   `json:"created_at"`
}
