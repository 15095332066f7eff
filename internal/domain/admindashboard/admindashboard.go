package admindashboard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) GetOverview(ctx context.Context) (*Overview, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE is_active = true),
			(SELECT COUNT(*) FROM users WHERE is_active = false),

			(SELECT COUNT(*) FROM doctors),
			(SELECT COUNT(*) FROM doctor_ratings WHERE review_count > 0),

			(SELECT COUNT(*) FROM reviews),
			(SELECT COUNT(*) FROM reviews WHERE created_at > NOW() - INTERVAL '7 days'),
			(SELECT COALESCE(AVG(avg_overall), 0) FROM doctor_ratings WHERE review_count > 0)
	`

	var o Overview
	err := r.db.QueryRow(ctx, q).Scan(
		&o.TotalUsers,
		&o.TotalActiveUsers,
		&o.TotalInactiveUsers,

		&o.TotalDoctors,
		&o.TotalRatedDoctors,

		&o.TotalReviews,
		&o.ReviewsLast7Days,
		&o.AvgOverallRating,
	)
	if err != nil {
		return nil, fmt.Errorf("get admin overview: %w", err)
	}

	byDep, err := r.departmentCounts(ctx)
	if err != nil {
		return nil, err
	}
	o.ByDepartment = byDep

	return &o, nil
}

func (r *Repository) departmentCounts(ctx context.Context) ([]DepartmentCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT department, COUNT(*)
		FROM doctors
		GROUP BY department
		ORDER BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("department counts: %w", err)
	}
	defer rows.Close()

	var out []DepartmentCount
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Doctors); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}
