package accesscontrol

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	AssignRole(ctx context.Context, userID int64, roleName string) error
	RemoveRole(ctx context.Context, userID int64, roleName string) error
	GetUserRoles(ctx context.Context, userID int64) ([]Role, error)
	UserHasRole(ctx context.Context, userID int64, roleName string) (bool, error)
	PrimaryRole(ctx context.Context, userID int64) (string, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Store {
	return &Repository{db: db}
}

func (r *Repository) AssignRole(ctx context.Context, userID int64, roleName string) error {
	query := `
        INSERT INTO user_roles (user_id, role_id)
        SELECT $1, id FROM roles WHERE name = $2
        ON CONFLICT DO NOTHING
    `
	result, err := r.db.Exec(ctx, query, userID, roleName)
	if err != nil {
		return err
	}
	// 0 rows on conflict is fine; 0 rows because the role name doesn't exist is not
	if result.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, roleName).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("unknown role: %s", roleName)
		}
	}
	return nil
}

func (r *Repository) RemoveRole(ctx context.Context, userID int64, roleName string) error {
	query := `
        DELETE FROM user_roles
        WHERE user_id = $1 AND role_id = (SELECT id FROM roles WHERE name = $2)
    `
	result, err := r.db.Exec(ctx, query, userID, roleName)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("role %q not assigned to user %d", roleName, userID)
	}
	return nil
}

func (r *Repository) GetUserRoles(ctx context.Context, userID int64) ([]Role, error) {
	query := `
        SELECT r.id, r.name, COALESCE(r.description, ''), r.created_at, r.updated_at
        FROM roles r
        JOIN user_roles ur ON ur.role_id = r.id
        WHERE ur.user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *Repository) UserHasRole(ctx context.Context, userID int64, roleName string) (bool, error) {
	var exists bool
	query := `
        SELECT EXISTS (
            SELECT 1
            FROM user_roles ur
            JOIN roles r ON ur.role_id = r.id
            WHERE ur.user_id = $1 AND r.name = $2
        )
    `
	err := r.db.QueryRow(ctx, query, userID, roleName).Scan(&exists)
	return exists, err
}

// PrimaryRole picks the highest-privilege role for token claims:
// admin > teacher > student. Users with no role row default to student.
func (r *Repository) PrimaryRole(ctx context.Context, userID int64) (string, error) {
	roles, err := r.GetUserRoles(ctx, userID)
	if err != nil {
		return "", err
	}

	has := make(map[string]bool, len(roles))
	for _, role := range roles {
		has[role.Name] = true
	}

	switch {
	case has[string(RoleAdmin)]:
		return string(RoleAdmin), nil
	case has[string(RoleTeacher)]:
		return string(RoleTeacher), nil
	default:
		return string(RoleStudent), nil
	}
}
