package ratings

import (
	"errors"
	"time"
)

var ErrNotRated = errors.New("doctor has no ratings yet")

// DoctorRating is the denormalized per-doctor aggregate row, recomputed from
// reviews whenever a review is created, updated or deleted.
type DoctorRating struct {
	DoctorID         int64     `json:"doctor_id"`
	AvgTeaching      float64   `json:"avg_teaching"`
	AvgAvailability  float64   `json:"avg_availability"`
	AvgCommunication float64   `json:"avg_communication"`
	AvgKnowledge     float64   `json:"avg_knowledge"`
	AvgFairness      float64   `json:"avg_fairness"`
	AvgOverall       float64   `json:"avg_overall"`
	ReviewCount      int       `json:"review_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}
