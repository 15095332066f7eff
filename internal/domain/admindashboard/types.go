package admindashboard

import "context"

type DepartmentCount struct {
	Department string `json:"department"`
	Doctors    int64  `json:"doctors"`
}

type Overview struct {
	// Users
	TotalUsers         int64 `json:"total_users"`
	TotalActiveUsers   int64 `json:"total_active_users"`
	TotalInactiveUsers int64 `json:"total_inactive_users"`

	// Doctors
	TotalDoctors      int64 `json:"total_doctors"`
	TotalRatedDoctors int64 `json:"total_rated_doctors"`

	// Reviews
	TotalReviews      int64   `json:"total_reviews"`
	ReviewsLast7Days  int64   `json:"reviews_last_7_days"`
	AvgOverallRating  float64 `json:"avg_overall_rating"`

	ByDepartment []DepartmentCount `json:"by_department"`
}

type Store interface {
	GetOverview(ctx context.Context) (*Overview, error)
}
