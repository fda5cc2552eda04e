package employee

import (
	"context"
	"go-hris-registry/internal/events"
	"go-hris-registry/internal/position"
	"go-hris-registry/internal/shared/contextutil"
	"math"
	"sync"
	"time"

	employeeerrors "go-hris-registry/internal/employee/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateSalary(ctx context.Context, id string, req UpdateSalaryRequest) (EmployeeResponse, error)
	UpdatePosition(ctx context.Context, id string, req UpdatePositionRequest) (EmployeeResponse, error)
	GetSalarySummary(ctx context.Context) (SalarySummaryResponse, error)
}

// service serializes every call into the Manager, which is not safe for
// concurrent use on its own.
type service struct {
	mu        sync.Mutex
	manager   *Manager
	positions position.Repository
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(positions position.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithPublisher(positions, nil, logger...)
}

func NewServiceWithPublisher(
	positions position.Repository,
	publisher EventPublisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	return &service{
		manager:   NewManager(),
		positions: positions,
		publisher: publisher,
		logger:    l,
		now:       time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	id := req.ID
	if id == "" {
		id = uuid.New().String()
	}
	log.Debug("create employee requested",
		zap.String("employee_id", id),
		zap.String("position_id", req.PositionID),
	)

	pos, err := s.positions.FindByID(ctx, req.PositionID)
	if err != nil {
		log.Warn("create employee position lookup failed",
			zap.String("position_id", req.PositionID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	var salary float64
	if req.Salary != nil {
		salary = *req.Salary
	}
	empl := NewEmployee(id, req.Name, pos, salary)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.manager.Add(empl); err != nil {
		log.Warn("create employee rejected", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	resp := mapToResponse(empl)
	s.publish(ctx, events.EmployeeAdded, resp)
	log.Info("create employee success", zap.String("employee_id", id))
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return mapToListResponse(s.manager.Employees()), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	empl, ok := s.manager.Find(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	var resp EmployeeResponse
	if empl, ok := s.manager.Find(id); ok {
		resp = mapToResponse(empl)
	}
	if err := s.manager.Remove(&Employee{ID: id}); err != nil {
		log.Warn("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.publish(ctx, events.EmployeeRemoved, resp)
	log.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) UpdateSalary(ctx context.Context, id string, req UpdateSalaryRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var salary float64
	if req.Salary != nil {
		salary = *req.Salary
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.mutate(id, func(e *Employee) error {
		return s.manager.UpdateSalary(e, salary)
	})
	if err != nil {
		log.Warn("update employee salary rejected",
			zap.String("employee_id", id),
			zap.Float64("salary", salary),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.publish(ctx, events.EmployeeSalaryUpdated, resp)
	log.Info("update employee salary success", zap.String("employee_id", id))
	return resp, nil
}

func (s *service) UpdatePosition(ctx context.Context, id string, req UpdatePositionRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	pos, err := s.positions.FindByID(ctx, req.PositionID)
	if err != nil {
		log.Warn("update employee position lookup failed",
			zap.String("position_id", req.PositionID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp, err := s.mutate(id, func(e *Employee) error {
		return s.manager.UpdatePosition(e, pos)
	})
	if err != nil {
		log.Warn("update employee position rejected",
			zap.String("employee_id", id),
			zap.String("position_id", pos.ID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	s.publish(ctx, events.EmployeePositionUpdated, resp)
	log.Info("update employee position success", zap.String("employee_id", id))
	return resp, nil
}

func (s *service) GetSalarySummary(ctx context.Context) (SalarySummaryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := s.manager.TotalSalary()
	if math.IsInf(total, 0) || math.IsNaN(total) {
		contextutil.GetLogger(ctx, s.logger).Error("salary total overflowed",
			zap.Int("headcount", s.manager.Len()),
		)
		return SalarySummaryResponse{}, employeeerrors.ErrSalaryTotalOverflow
	}

	return SalarySummaryResponse{
		TotalSalary: total,
		Headcount:   s.manager.Len(),
	}, nil
}

// mutate runs fn against the employee addressed by id and snapshots the
// result. Callers hold s.mu.
func (s *service) mutate(id string, fn func(e *Employee) error) (EmployeeResponse, error) {
	if err := fn(&Employee{ID: id}); err != nil {
		return EmployeeResponse{}, err
	}
	empl, _ := s.manager.Find(id)
	return mapToResponse(empl), nil
}

// publish reports a committed change. Callers hold s.mu so events for one
// employee leave in the order the changes were applied. Failures are
// logged only: the registry has already changed and is not rolled back.
func (s *service) publish(ctx context.Context, eventType string, e EmployeeResponse) {
	event := events.EmployeeEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: e.ID,
		PositionID: e.PositionID,
		Salary:     e.Salary,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("publish employee event failed",
			zap.String("event_type", eventType),
			zap.String("employee_id", e.ID),
			zap.Error(err),
		)
	}
}
