package pg

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

type AssignmentStorage struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewAssignmentStorage(db *sql.DB, log *zap.SugaredLogger) repository.AssignmentRepository {
	return &AssignmentStorage{db: db, log: log.Named("pg.assignments")}
}

// Assign is idempotent: assigning twice keeps the original assigned_at.
func (s *AssignmentStorage) Assign(ctx context.Context, projectID, userID int64) error {
	q := querier(ctx, s.db)

	_, err := q.ExecContext(ctx, `
		INSERT INTO user_projects (user_id, project_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, project_id) DO NOTHING
	`, userID, projectID)
	if err != nil {
		if pqCode(err) == foreignKeyViolation {
			return fmt.Errorf("assign user %d to project %d: %w", userID, projectID, usecase.ErrInvalidArgument)
		}
		return fmt.Errorf("assign user: %w", err)
	}
	return nil
}

func (s *AssignmentStorage) Unassign(ctx context.Context, projectID, userID int64) error {
	q := querier(ctx, s.db)

	res, err := q.ExecContext(ctx, `DELETE FROM user_projects WHERE user_id = $1 AND project_id = $2`, userID, projectID)
	if err != nil {
		return fmt.Errorf("unassign user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unassign user: %w", err)
	}
	if n == 0 {
		return usecase.ErrNotAssigned
	}
	return nil
}

func (s *AssignmentStorage) IsAssigned(ctx context.Context, projectID, userID int64) (bool, error) {
	q := querier(ctx, s.db)

	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM user_projects WHERE user_id = $1 AND project_id = $2)
	`, userID, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return exists, nil
}

func (s *AssignmentStorage) ListUsers(ctx context.Context, projectID int64) ([]entity.User, error) {
	q := querier(ctx, s.db)

	rows, err := q.QueryContext(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.created_at
		FROM users u
		JOIN user_projects up ON up.user_id = u.id
		WHERE up.project_id = $1
		ORDER BY up.assigned_at, u.id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project users: %w", err)
	}
	defer closeRows(s.log, rows)

	users := make([]entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AssignmentStorage) DeleteByProject(ctx context.Context, projectID int64) error {
	q := querier(ctx, s.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM user_projects WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("delete project assignments: %w", err)
	}
	return nil
}

func (s *AssignmentStorage) DeleteByUser(ctx context.Context, userID int64) error {
	q := querier(ctx, s.db)

	if _, err := q.ExecContext(ctx, `DELETE FROM user_projects WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete user assignments: %w", err)
	}
	return nil
}
