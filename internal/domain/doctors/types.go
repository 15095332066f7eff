package doctors

import (
	"errors"
	"time"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Doctor is an instructor record as stored in the database.
type Doctor struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Title      string    `json:"title"` // e.g. "Professor", "Lecturer"
	Department string    `json:"department"`
	Faculty    string    `json:"faculty"`
	Bio        *string   `json:"bio,omitempty"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RatingSummary carries the denormalized aggregate attached to read paths.
type RatingSummary struct {
	AvgTeaching      float64 `json:"avg_teaching"`
	AvgAvailability  float64 `json:"avg_availability"`
	AvgCommunication float64 `json:"avg_communication"`
	AvgKnowledge     float64 `json:"avg_knowledge"`
	AvgFairness      float64 `json:"avg_fairness"`
	AvgOverall       float64 `json:"avg_overall"`
	ReviewCount      int     `json:"review_count"`
}

// DoctorListing is one row of the public browse view.
type DoctorListing struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Faculty    string  `json:"faculty"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	RatingSummary
}

// DoctorDetail extends Doctor with its aggregate for the detail page.
type DoctorDetail struct {
	Doctor
	RatingSummary
}

type Filter struct {
	Search     *string // matches first/last name
	Department *string
	Sort       string // rating | reviews | name
	Page       int
	Limit      int
}

type ListResult struct {
	Doctors []DoctorListing
	Total   int
}
