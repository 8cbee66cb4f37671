package pg

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func closeRows(log *zap.SugaredLogger, rows *sql.Rows) {
	if rows != nil {
		if err := rows.Close(); err != nil {
			log.Errorw("closing rows", "error", err)
		}
	}
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

type scanner interface {
	Scan(dest ...any) error
}
