package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Get(ctx context.Context, doctorID int64) (*DoctorRating, error)
	Recompute(ctx context.Context, doctorID int64) error
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// recomputeQuery rebuilds the aggregate row from surviving reviews in one
// upsert. The overall score is the mean of each review's five-factor mean,
// so a doctor with zero reviews zeroes out with count 0.
const recomputeQuery = `
	INSERT INTO doctor_ratings (
		doctor_id, avg_teaching, avg_availability, avg_communication,
		avg_knowledge, avg_fairness, avg_overall, review_count, updated_at
	)
	SELECT
		$1,
		COALESCE(AVG(teaching), 0),
		COALESCE(AVG(availability), 0),
		COALESCE(AVG(communication), 0),
		COALESCE(AVG(knowledge), 0),
		COALESCE(AVG(fairness), 0),
		COALESCE(AVG((teaching + availability + communication + knowledge + fairness) / 5.0), 0),
		COUNT(*),
		NOW()
	FROM reviews
	WHERE doctor_id = $1
	ON CONFLICT (doctor_id) DO UPDATE SET
		avg_teaching      = EXCLUDED.avg_teaching,
		avg_availability  = EXCLUDED.avg_availability,
		avg_communication = EXCLUDED.avg_communication,
		avg_knowledge     = EXCLUDED.avg_knowledge,
		avg_fairness      = EXCLUDED.avg_fairness,
		avg_overall       = EXCLUDED.avg_overall,
		review_count      = EXCLUDED.review_count,
		updated_at        = EXCLUDED.updated_at
`

func (r *Repository) Recompute(ctx context.Context, doctorID int64) error {
	if _, err := r.db.Exec(ctx, recomputeQuery, doctorID); err != nil {
		return fmt.Errorf("recompute doctor rating: %w", err)
	}
	return nil
}

// RecomputeTx is the transactional variant used by the review store so the
// aggregate stays consistent with the review mutation that triggered it.
func RecomputeTx(ctx context.Context, tx pgx.Tx, doctorID int64) error {
	if _, err := tx.Exec(ctx, recomputeQuery, doctorID); err != nil {
		return fmt.Errorf("recompute doctor rating: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, doctorID int64) (*DoctorRating, error) {
	query := `
		SELECT doctor_id, avg_teaching, avg_availability, avg_communication,
		       avg_knowledge, avg_fairness, avg_overall, review_count, updated_at
		FROM doctor_ratings
		WHERE doctor_id = $1
	`

	var dr DoctorRating
	err := r.db.QueryRow(ctx, query, doctorID).Scan(
		&dr.DoctorID, &dr.AvgTeaching, &dr.AvgAvailability, &dr.AvgCommunication,
		&dr.AvgKnowledge, &dr.AvgFairness, &dr.AvgOverall, &dr.ReviewCount, &dr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotRated
		}
		return nil, err
	}
	return &dr, nil
}
