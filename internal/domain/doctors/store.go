package doctors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, doctor *Doctor) error
	Update(ctx context.Context, doctorID int64, updates map[string]interface{}) error
	Delete(ctx context.Context, doctorID int64) error
	GetByID(ctx context.Context, doctorID int64) (*DoctorDetail, error)
	List(ctx context.Context, filter Filter) (*ListResult, error)
	Compare(ctx context.Context, ids []int64) ([]DoctorDetail, error)
	TopRated(ctx context.Context, limit, minReviews int) ([]DoctorListing, error)
	Departments(ctx context.Context) ([]string, error)
	Exists(ctx context.Context, doctorID int64) (bool, error)
	SetPhotoURL(ctx context.Context, doctorID int64, url *string) error
	GetPhotoURL(ctx context.Context, doctorID int64) (*string, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, doctor *Doctor) error {
	query := `
        INSERT INTO doctors (first_name, last_name, title, department, faculty, bio, photo_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at
    `
	return r.db.QueryRow(ctx, query,
		doctor.FirstName,
		doctor.LastName,
		doctor.Title,
		doctor.Department,
		doctor.Faculty,
		doctor.Bio,
		doctor.PhotoURL,
	).Scan(&doctor.ID, &doctor.CreatedAt, &doctor.UpdatedAt)
}

func (r *Repository) Update(ctx context.Context, doctorID int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	for field, value := range updates {
		if !isValidField(field) {
			return fmt.Errorf("invalid field name: %s", field)
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", field, argCounter))
		args = append(args, value)
		argCounter++
	}
	args = append(args, doctorID)

	query := fmt.Sprintf("UPDATE doctors SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(setClauses, ", "), argCounter)

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func isValidField(field string) bool {
	validFields := map[string]bool{
		"first_name": true,
		"last_name":  true,
		"title":      true,
		"department": true,
		"faculty":    true,
		"bio":        true,
	}
	return validFields[field]
}

// Delete removes the doctor; reviews and the rating row go with it via
// ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, doctorID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, doctorID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

const detailColumns = `
	d.id, d.first_name, d.last_name, d.title, d.department, d.faculty, d.bio, d.photo_url,
	d.created_at, d.updated_at,
	COALESCE(dr.avg_teaching, 0),
	COALESCE(dr.avg_availability, 0),
	COALESCE(dr.avg_communication, 0),
	COALESCE(dr.avg_knowledge, 0),
	COALESCE(dr.avg_fairness, 0),
	COALESCE(dr.avg_overall, 0),
	COALESCE(dr.review_count, 0)
`

func scanDetail(row pgx.Row, d *DoctorDetail) error {
	return row.Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Title, &d.Department, &d.Faculty, &d.Bio, &d.PhotoURL,
		&d.CreatedAt, &d.UpdatedAt,
		&d.AvgTeaching, &d.AvgAvailability, &d.AvgCommunication,
		&d.AvgKnowledge, &d.AvgFairness, &d.AvgOverall, &d.ReviewCount,
	)
}

func (r *Repository) GetByID(ctx context.Context, doctorID int64) (*DoctorDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM doctors d
		LEFT JOIN doctor_ratings dr ON dr.doctor_id = d.id
		WHERE d.id = $1
	`

	var d DoctorDetail
	if err := scanDetail(r.db.QueryRow(ctx, query, doctorID), &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *Repository) List(ctx context.Context, filter Filter) (*ListResult, error) {
	var (
		where      []string
		args       []interface{}
		argCounter = 1
	)

	if filter.Search != nil {
		where = append(where, fmt.Sprintf(
			"(d.first_name ILIKE $%d OR d.last_name ILIKE $%d OR d.first_name || ' ' || d.last_name ILIKE $%d)",
			argCounter, argCounter, argCounter))
		args = append(args, "%"+*filter.Search+"%")
		argCounter++
	}

	if filter.Department != nil {
		where = append(where, fmt.Sprintf("d.department = $%d", argCounter))
		args = append(args, *filter.Department)
		argCounter++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM doctors d" + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("error counting doctors: %w", err)
	}

	var orderBy string
	switch filter.Sort {
	case "rating":
		orderBy = "COALESCE(dr.avg_overall, 0) DESC, d.last_name"
	case "reviews":
		orderBy = "COALESCE(dr.review_count, 0) DESC, d.last_name"
	default:
		orderBy = "d.last_name, d.first_name"
	}

	query := fmt.Sprintf(`
		SELECT
			d.id, d.first_name, d.last_name, d.title, d.department, d.faculty, d.photo_url,
			COALESCE(dr.avg_teaching, 0),
			COALESCE(dr.avg_availability, 0),
			COALESCE(dr.avg_communication, 0),
			COALESCE(dr.avg_knowledge, 0),
			COALESCE(dr.avg_fairness, 0),
			COALESCE(dr.avg_overall, 0),
			COALESCE(dr.review_count, 0)
		FROM doctors d
		LEFT JOIN doctor_ratings dr ON dr.doctor_id = d.id
		%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argCounter, argCounter+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying doctors: %w", err)
	}
	defer rows.Close()

	var listings []DoctorListing
	for rows.Next() {
		var d DoctorListing
		if err := rows.Scan(
			&d.ID, &d.FirstName, &d.LastName, &d.Title, &d.Department, &d.Faculty, &d.PhotoURL,
			&d.AvgTeaching, &d.AvgAvailability, &d.AvgCommunication,
			&d.AvgKnowledge, &d.AvgFairness, &d.AvgOverall, &d.ReviewCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning doctor row: %w", err)
		}
		listings = append(listings, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &ListResult{Doctors: listings, Total: total}, nil
}

// Compare returns side-by-side aggregates, preserving the requested order.
func (r *Repository) Compare(ctx context.Context, ids []int64) ([]DoctorDetail, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM doctors d
		LEFT JOIN doctor_ratings dr ON dr.doctor_id = d.id
		WHERE d.id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error querying doctors for compare: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]DoctorDetail, len(ids))
	for rows.Next() {
		var d DoctorDetail
		if err := scanDetail(rows, &d); err != nil {
			return nil, err
		}
		byID[d.ID] = d
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]DoctorDetail, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, ErrDoctorNotFound
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *Repository) TopRated(ctx context.Context, limit, minReviews int) ([]DoctorListing, error) {
	query := `
		SELECT
			d.id, d.first_name, d.last_name, d.title, d.department, d.faculty, d.photo_url,
			dr.avg_teaching, dr.avg_availability, dr.avg_communication,
			dr.avg_knowledge, dr.avg_fairness, dr.avg_overall, dr.review_count
		FROM doctors d
		JOIN doctor_ratings dr ON dr.doctor_id = d.id
		WHERE dr.review_count >= $1
		ORDER BY dr.avg_overall DESC, dr.review_count DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, minReviews, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top rated doctors: %w", err)
	}
	defer rows.Close()

	var listings []DoctorListing
	for rows.Next() {
		var d DoctorListing
		if err := rows.Scan(
			&d.ID, &d.FirstName, &d.LastName, &d.Title, &d.Department, &d.Faculty, &d.PhotoURL,
			&d.AvgTeaching, &d.AvgAvailability, &d.AvgCommunication,
			&d.AvgKnowledge, &d.AvgFairness, &d.AvgOverall, &d.ReviewCount,
		); err != nil {
			return nil, err
		}
		listings = append(listings, d)
	}
	return listings, rows.Err()
}

func (r *Repository) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT department FROM doctors ORDER BY department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var dep string
		if err := rows.Scan(&dep); err != nil {
			return nil, err
		}
		departments = append(departments, dep)
	}
	return departments, rows.Err()
}

func (r *Repository) Exists(ctx context.Context, doctorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctors WHERE id = $1)`, doctorID).Scan(&exists)
	return exists, err
}

func (r *Repository) SetPhotoURL(ctx context.Context, doctorID int64, url *string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE doctors SET photo_url = $1, updated_at = NOW() WHERE id = $2`, url, doctorID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrDoctorNotFound
	}
	return nil
}

func (r *Repository) GetPhotoURL(ctx context.Context, doctorID int64) (*string, error) {
	var url *string
	err := r.db.QueryRow(ctx, `SELECT photo_url FROM doctors WHERE id = $1`, doctorID).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return url, nil
}
