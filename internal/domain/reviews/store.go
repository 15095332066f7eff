package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"profrate/internal/database"
	"profrate/internal/domain/ratings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, reviewID, userID int64) error
	AdminDelete(ctx context.Context, reviewID int64) error
	GetByID(ctx context.Context, reviewID int64) (*Review, error)
	GetByDoctorAndUser(ctx context.Context, doctorID, userID int64) (*Review, error)
	ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) (*ListResult, error)
	HasReview(ctx context.Context, doctorID, userID int64) (bool, error)
	IsOwner(ctx context.Context, reviewID, userID int64) (bool, error)
	AdminList(ctx context.Context, filter AdminFilter, limit, offset int) ([]AdminRow, int, error)
	AllForExport(ctx context.Context) ([]ExportRow, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

// Create inserts the review and recomputes the doctor aggregate in the same
// transaction. A second review by the same student maps the unique constraint
// to ErrDuplicateReview.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reviews (doctor_id, user_id, teaching, availability, communication, knowledge, fairness, comment)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, query,
			review.DoctorID,
			review.UserID,
			review.Teaching,
			review.Availability,
			review.Communication,
			review.Knowledge,
			review.Fairness,
			review.Comment,
		).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateReview
			}
			return err
		}

		return ratings.RecomputeTx(ctx, tx, review.DoctorID)
	})
}

// Update rewrites the factors and comment of the caller's own review, then
// recomputes the aggregate in the same transaction.
func (r *Repository) Update(ctx context.Context, review *Review) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		query := `
			UPDATE reviews
			SET teaching = $1, availability = $2, communication = $3,
			    knowledge = $4, fairness = $5, comment = $6, updated_at = NOW()
			WHERE id = $7 AND user_id = $8
			RETURNING doctor_id, updated_at
		`
		err := tx.QueryRow(ctx, query,
			review.Teaching,
			review.Availability,
			review.Communication,
			review.Knowledge,
			review.Fairness,
			review.Comment,
			review.ID,
			review.UserID,
		).Scan(&review.DoctorID, &review.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		return ratings.RecomputeTx(ctx, tx, review.DoctorID)
	})
}

func (r *Repository) Delete(ctx context.Context, reviewID, userID int64) error {
	return r.deleteWhere(ctx, `id = $1 AND user_id = $2`, reviewID, userID)
}

// AdminDelete removes any review regardless of owner.
func (r *Repository) AdminDelete(ctx context.Context, reviewID int64) error {
	return r.deleteWhere(ctx, `id = $1`, reviewID)
}

func (r *Repository) deleteWhere(ctx context.Context, where string, args ...interface{}) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		var doctorID int64
		query := fmt.Sprintf(`DELETE FROM reviews WHERE %s RETURNING doctor_id`, where)
		err := tx.QueryRow(ctx, query, args...).Scan(&doctorID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		return ratings.RecomputeTx(ctx, tx, doctorID)
	})
}

const reviewColumns = `id, doctor_id, user_id, teaching, availability, communication, knowledge, fairness, comment, created_at, updated_at`

func scanReview(row pgx.Row, rv *Review) error {
	return row.Scan(
		&rv.ID, &rv.DoctorID, &rv.UserID,
		&rv.Teaching, &rv.Availability, &rv.Communication, &rv.Knowledge, &rv.Fairness,
		&rv.Comment, &rv.CreatedAt, &rv.UpdatedAt,
	)
}

func (r *Repository) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	var rv Review
	err := scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, reviewID), &rv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *Repository) GetByDoctorAndUser(ctx context.Context, doctorID, userID int64) (*Review, error) {
	var rv Review
	err := scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE doctor_id = $1 AND user_id = $2`,
		doctorID, userID), &rv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *Repository) ListByDoctor(ctx context.Context, doctorID int64, limit, offset int) (*ListResult, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE doctor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var rv Review
		if err := scanReview(rows, &rv); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ListResult{Reviews: out, Total: total}, nil
}

// HasReview returns true if a review by this user on this doctor already exists.
func (r *Repository) HasReview(ctx context.Context, doctorID, userID int64) (bool, error) {
	var exists bool
	query := `
        SELECT EXISTS (
          SELECT 1 FROM reviews
          WHERE doctor_id = $1 AND user_id = $2
        )
    `
	err := r.db.QueryRow(ctx, query, doctorID, userID).Scan(&exists)
	return exists, err
}

func (r *Repository) IsOwner(ctx context.Context, reviewID, userID int64) (bool, error) {
	var reviewUserID int64
	err := r.db.QueryRow(ctx, `SELECT user_id FROM reviews WHERE id = $1`, reviewID).Scan(&reviewUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, err
	}

	return reviewUserID == userID, nil
}

func (r *Repository) AdminList(ctx context.Context, filter AdminFilter, limit, offset int) ([]AdminRow, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	argCounter := 1

	if filter.DoctorID != nil {
		where = append(where, fmt.Sprintf("rv.doctor_id = $%d", argCounter))
		args = append(args, *filter.DoctorID)
		argCounter++
	}

	overall := "(rv.teaching + rv.availability + rv.communication + rv.knowledge + rv.fairness) / 5.0"
	if filter.MinOverall != nil {
		where = append(where, fmt.Sprintf("%s >= $%d", overall, argCounter))
		args = append(args, *filter.MinOverall)
		argCounter++
	}
	if filter.MaxOverall != nil {
		where = append(where, fmt.Sprintf("%s <= $%d", overall, argCounter))
		args = append(args, *filter.MaxOverall)
		argCounter++
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM reviews rv WHERE " + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("admin review count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT
			rv.id, rv.doctor_id, rv.user_id,
			rv.teaching, rv.availability, rv.communication, rv.knowledge, rv.fairness,
			rv.comment, rv.created_at, rv.updated_at,
			u.email,
			d.first_name || ' ' || d.last_name AS doctor_name
		FROM reviews rv
		JOIN users u ON u.id = rv.user_id
		JOIN doctors d ON d.id = rv.doctor_id
		WHERE %s
		ORDER BY rv.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argCounter, argCounter+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("admin review list: %w", err)
	}
	defer rows.Close()

	var out []AdminRow
	for rows.Next() {
		var row AdminRow
		if err := rows.Scan(
			&row.ID, &row.DoctorID, &row.UserID,
			&row.Teaching, &row.Availability, &row.Communication, &row.Knowledge, &row.Fairness,
			&row.Comment, &row.CreatedAt, &row.UpdatedAt,
			&row.UserEmail, &row.DoctorName,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, row)
	}
	return out, total, rows.Err()
}

// AllForExport streams every review joined with its doctor, author excluded.
func (r *Repository) AllForExport(ctx context.Context) ([]ExportRow, error) {
	query := `
		SELECT
			rv.id,
			d.first_name || ' ' || d.last_name AS doctor_name,
			d.department,
			rv.teaching, rv.availability, rv.communication, rv.knowledge, rv.fairness,
			rv.comment, rv.created_at
		FROM reviews rv
		JOIN doctors d ON d.id = rv.doctor_id
		ORDER BY rv.created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(
			&row.ID, &row.DoctorName, &row.Department,
			&row.Teaching, &row.Availability, &row.Communication, &row.Knowledge, &row.Fairness,
			&row.Comment, &row.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
