package position

import (
	"context"
	"go-hris-registry/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}

	var minSalary, maxSalary float64
	if req.MinSalary != nil {
		minSalary = *req.MinSalary
	}
	if req.MaxSalary != nil {
		maxSalary = *req.MaxSalary
	}

	p, err := NewPosition(id, req.Title, minSalary, maxSalary)
	if err != nil {
		log.Warn("create position rejected",
			zap.String("position_id", id),
			zap.Float64("min_salary", minSalary),
			zap.Float64("max_salary", maxSalary),
			zap.Error(err),
		)
		return PositionResponse{}, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.Warn("create position persist failed", zap.String("position_id", id), zap.Error(err))
		return PositionResponse{}, err
	}

	log.Info("create position success", zap.String("position_id", p.ID))
	return mapToResponse(p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PositionResponse, error) {
	positions, err := s.repo.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("get all positions failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(positions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PositionResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PositionResponse{}, err
	}
	return mapToResponse(p), nil
}
