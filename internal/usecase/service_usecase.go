package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/converter"
	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/domain/repository"
	"github.com/mensonones/service-pro-api/pkg/apperr"
)

var ErrServiceNotFound = apperr.NotFound("service not found")

// ServiceCache sits in front of catalog reads. Implemented by
// service.CatalogCache; a nil-safe fake is enough for tests.
type ServiceCache interface {
	Get(ctx context.Context, id uuid.UUID) *entity.Service
	Set(ctx context.Context, service *entity.Service)
	Invalidate(ctx context.Context, id uuid.UUID)
}

type ServiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	GetAll(ctx context.Context, search string, page, limit int) ([]dto.ServiceResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	cache       ServiceCache
}

func NewServiceUsecase(
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	cache ServiceCache,
) ServiceUsecase {
	return &serviceUsecase{
		log:         log,
		serviceRepo: serviceRepo,
		cache:       cache,
	}
}

func (u *serviceUsecase) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc := &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := svc.Validate(); err != nil {
		return nil, apperr.ValidationWrap(err)
	}

	if err := u.serviceRepo.Create(ctx, svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.log.Infof("Service created: id=%s, name=%s, price=%s", svc.ID, svc.Name, svc.Price)
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	svc, err := u.findService(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) GetAll(ctx context.Context, search string, page, limit int) ([]dto.ServiceResponse, int64, error) {
	offset := (page - 1) * limit

	services, total, err := u.serviceRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, 0, err
	}

	return converter.ServicesToResponses(services), total, nil
}

func (u *serviceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price

	if err := svc.Validate(); err != nil {
		return nil, apperr.ValidationWrap(err)
	}

	if err := u.serviceRepo.Update(ctx, svc); err != nil {
		u.log.Warnf("Failed to update service %s: %+v", id, err)
		return nil, err
	}

	// Price edits must be visible to the next appointment pricing read
	u.cache.Invalidate(ctx, id)

	u.log.Infof("Service updated: id=%s, price=%s", svc.ID, svc.Price)
	return converter.ServiceToResponse(svc), nil
}

func (u *serviceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	if err := u.serviceRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete service %s: %+v", id, err)
		return err
	}

	u.cache.Invalidate(ctx, id)
	return nil
}

// findService reads through the catalog cache and falls back to Postgres.
func (u *serviceUsecase) findService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	if cached := u.cache.Get(ctx, id); cached != nil {
		return cached, nil
	}

	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	u.cache.Set(ctx, svc)
	return svc, nil
}
