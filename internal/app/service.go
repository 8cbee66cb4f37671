package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/mark47B/pr-health-dashboard/internal/domain/entity"
	"github.com/mark47B/pr-health-dashboard/internal/domain/prhealth"
	"github.com/mark47B/pr-health-dashboard/internal/domain/repository"
	"github.com/mark47B/pr-health-dashboard/internal/domain/usecase"
)

// compile-time proof
var _ usecase.Service = (*ServiceImpl)(nil)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenManager interface {
	Issue(user entity.User) (string, error)
	Parse(token string) (int64, error)
}

type Deps struct {
	Users       repository.UserRepository
	Projects    repository.ProjectRepository
	Assignments repository.AssignmentRepository
	Source      repository.PullRequestSource
	TxManager   repository.TxManager
	Hasher      PasswordHasher
	Tokens      TokenManager
	Metrics     prhealth.Config
	Log         *zap.SugaredLogger
}

type ServiceImpl struct {
	users       repository.UserRepository
	projects    repository.ProjectRepository
	assignments repository.AssignmentRepository
	source      repository.PullRequestSource
	txManager   repository.TxManager
	hasher      PasswordHasher
	tokens      TokenManager
	validate    *validator.Validate
	metrics     prhealth.Config
	now         func() time.Time
	log         *zap.SugaredLogger
}

func NewService(d Deps) *ServiceImpl {
	metrics := d.Metrics
	if metrics.StaleThresholdDays <= 0 {
		metrics = prhealth.DefaultConfig()
	}
	log := d.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ServiceImpl{
		users:       d.Users,
		projects:    d.Projects,
		assignments: d.Assignments,
		source:      d.Source,
		txManager:   d.TxManager,
		hasher:      d.Hasher,
		tokens:      d.Tokens,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		metrics:     metrics,
		now:         time.Now,
		log:         log.Named("service"),
	}
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return usecase.ErrForbidden
	}
	return nil
}

func (s *ServiceImpl) validateInput(in any) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidArgument, err)
	}
	return nil
}
