package reviews

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("review not found")
	ErrDuplicateReview = errors.New("you have already reviewed this doctor")
)

// Review is a single anonymous five-factor rating of a doctor. UserID never
// leaves the API; the public shape carries an anonymous handle instead.
type Review struct {
	ID            int64     `json:"id"`
	DoctorID      int64     `json:"doctor_id"`
	UserID        int64     `json:"-"`
	Teaching      int       `json:"teaching"`      // 1-5
	Availability  int       `json:"availability"`  // 1-5
	Communication int       `json:"communication"` // 1-5
	Knowledge     int       `json:"knowledge"`     // 1-5
	Fairness      int       `json:"fairness"`      // 1-5
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Overall is the mean of the five factors for this single review.
func (r *Review) Overall() float64 {
	return float64(r.Teaching+r.Availability+r.Communication+r.Knowledge+r.Fairness) / 5.0
}

type ListResult struct {
	Reviews []Review
	Total   int
}

// AdminFilter narrows the moderation listing.
type AdminFilter struct {
	DoctorID   *int64
	MinOverall *float64
	MaxOverall *float64
}

// AdminRow is one row of the moderation table; unlike the public shape it
// exposes the author, since moderators need it.
type AdminRow struct {
	Review
	UserID     int64  `json:"user_id"`
	UserEmail  string `json:"user_email"`
	DoctorName string `json:"doctor_name"`
}

// ExportRow is one line of the admin CSV export.
type ExportRow struct {
	ID            int64
	DoctorName    string
	Department    string
	Teaching      int
	Availability  int
	Communication int
	Knowledge     int
	Fairness      int
	Comment       string
	CreatedAt     time.Time
}
