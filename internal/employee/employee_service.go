package employee

import (
	"context"
	"fmt"

	employeeerrors "github.com/nirajdighe005/alj-java-challenge/internal/employee/errors"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/contextutil"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/response"

	"go.uber.org/zap"
)

// entityLabel is interpolated into every user-facing message template.
const entityLabel = "Employee"

// Message templates keyed by operation kind. The exact wording is part of
// the API contract; tests pin it.
const (
	msgCreateSuccessful = "%s with id %d Successfully created."
	msgUpdateSuccessful = "%s with id %d Successfully updated."
	msgDeleteSuccessful = "%s with id %d Successfully deleted."
)

type Service interface {
	List(ctx context.Context) (BulkEmployeeView, error)
	Get(ctx context.Context, id int64) (EmployeeView, error)
	Create(ctx context.Context, info EmployeeInfo) (response.VoidResponse, error)
	Update(ctx context.Context, view EmployeeView) (response.VoidResponse, error)
	Delete(ctx context.Context, id int64) (response.VoidResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger.Named("employee.service")}
}

func (s *service) List(ctx context.Context) (BulkEmployeeView, error) {
	s.logger.Debug("list employees requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)

	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return BulkEmployeeView{}, mapRepositoryError(err)
	}

	return toBulkView(empls), nil
}

func (s *service) Get(ctx context.Context, id int64) (EmployeeView, error) {
	s.logger.Debug("get employee requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int64("employee_id", id),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeView{}, mapRepositoryError(err)
	}

	return toView(*empl), nil
}

func (s *service) Create(ctx context.Context, info EmployeeInfo) (response.VoidResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("name", info.Name),
		zap.String("department", info.Department),
	)

	empl := infoToEntity(info)
	if err := s.repo.Create(ctx, &empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return response.VoidResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return response.VoidResponse{
		Response: fmt.Sprintf(msgCreateSuccessful, entityLabel, empl.ID),
	}, nil
}

func (s *service) Update(ctx context.Context, view EmployeeView) (response.VoidResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", view.ID),
	)

	exists, err := s.repo.ExistsByID(ctx, view.ID)
	if err != nil {
		s.logger.Error("update employee existence check failed", zap.Int64("employee_id", view.ID), zap.Error(err))
		return response.VoidResponse{}, mapRepositoryError(err)
	}
	if !exists {
		s.logger.Warn("update employee target missing", zap.Int64("employee_id", view.ID))
		return response.VoidResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// Whole-record replace, no partial patch.
	empl := toEntity(view)
	if err := s.repo.Update(ctx, &empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Int64("employee_id", view.ID), zap.Error(err))
		return response.VoidResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", view.ID),
	)

	return response.VoidResponse{
		Response: fmt.Sprintf(msgUpdateSuccessful, entityLabel, view.ID),
	}, nil
}

func (s *service) Delete(ctx context.Context, id int64) (response.VoidResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee existence check failed", zap.Int64("employee_id", id), zap.Error(err))
		return response.VoidResponse{}, mapRepositoryError(err)
	}
	if !exists {
		s.logger.Warn("delete employee target missing", zap.Int64("employee_id", id))
		return response.VoidResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return response.VoidResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	return response.VoidResponse{
		Response: fmt.Sprintf(msgDeleteSuccessful, entityLabel, id),
	}, nil
}
