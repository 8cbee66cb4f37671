package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

const userColumns = `id, name, email, password_hash, role, created_at`

type UserStorage struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewUserStorage(db *sql.DB, log *zap.SugaredLogger) repository.UserRepository {
	return &UserStorage{db: db, log: log.Named("pg.users")}
}

func scanUser(row scanner) (entity.User, error) {
	var u entity.User
	var role string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return entity.User{}, err
	}
	u.Role = entity.Role(role)
	return u, nil
}

func (s *UserStorage) Create(ctx context.Context, user entity.User) (entity.User, error) {
	q := querier(ctx, s.db)

	row := q.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		user.Name, user.Email, user.PasswordHash, string(user.Role),
	)

	created, err := scanUser(row)
	if err != nil {
		if pqCode(err) == uniqueViolation {
			return entity.User{}, usecase.ErrEmailTaken
		}
		return entity.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (s *UserStorage) Get(ctx context.Context, id int64) (entity.User, error) {
	q := querier(ctx, s.db)

	u, err := scanUser(q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStorage) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	q := querier(ctx, s.db)

	u, err := scanUser(q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, usecase.ErrUserNotFound
		}
		return entity.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *UserStorage) ListByRoles(ctx context.Context, roles ...entity.Role) ([]entity.User, error) {
	q := querier(ctx, s.db)

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = ANY($1)
		ORDER BY id
	`, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
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

func (s *UserStorage) Delete(ctx context.Context, id int64) error {
	q := querier(ctx, s.db)

	res, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
