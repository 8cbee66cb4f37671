package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

const projectColumns = `p.id, p.name, p.repo_url, p.created_by, p.created_at`

type ProjectStorage struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewProjectStorage(db *sql.DB, log *zap.SugaredLogger) repository.ProjectRepository {
	return &ProjectStorage{db: db, log: log.Named("pg.projects")}
}

func scanProject(row scanner) (entity.Project, error) {
	var p entity.Project
	var createdBy sql.NullInt64
	if err := row.Scan(&p.ID, &p.Name, &p.RepoURL, &createdBy, &p.CreatedAt); err != nil {
		return entity.Project{}, err
	}
	if createdBy.Valid {
		p.CreatedBy = &createdBy.Int64
	}
	return p, nil
}

func (s *ProjectStorage) Create(ctx context.Context, project entity.Project) (entity.Project, error) {
	q := querier(ctx, s.db)

	var createdBy sql.NullInt64
	if project.CreatedBy != nil {
		createdBy = sql.NullInt64{Int64: *project.CreatedBy, Valid: true}
	}

	row := q.QueryRowContext(ctx, `
		INSERT INTO projects AS p (name, repo_url, created_by)
		VALUES ($1, $2, $3)
		RETURNING `+projectColumns,
		project.Name, project.RepoURL, createdBy,
	)

	created, err := scanProject(row)
	if err != nil {
		return entity.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return created, nil
}

func (s *ProjectStorage) Get(ctx context.Context, id int64) (entity.Project, error) {
	q := querier(ctx, s.db)

	p, err := scanProject(q.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Project{}, usecase.ErrProjectNotFound
		}
		return entity.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (s *ProjectStorage) List(ctx context.Context) ([]entity.Project, error) {
	return s.list(ctx, `SELECT `+projectColumns+` FROM projects p ORDER BY p.id`)
}

func (s *ProjectStorage) ListByUser(ctx context.Context, userID int64) ([]entity.Project, error) {
	return s.list(ctx, `
		SELECT `+projectColumns+`
		FROM projects p
		JOIN user_projects up ON up.project_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.id
	`, userID)
}

func (s *ProjectStorage) list(ctx context.Context, query string, args ...any) ([]entity.Project, error) {
	q := querier(ctx, s.db)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer closeRows(s.log, rows)

	projects := make([]entity.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectStorage) Delete(ctx context.Context, id int64) error {
	q := querier(ctx, s.db)

	res, err := q.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}
