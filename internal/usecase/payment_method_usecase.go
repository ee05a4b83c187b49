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

var ErrPaymentMethodNotFound = apperr.NotFound("payment method not found")

type PaymentMethodUsecase interface {
	Create(ctx context.Context, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error)
	GetAll(ctx context.Context, search string, page, limit int) ([]dto.PaymentMethodResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentMethodUsecase struct {
	log        *logrus.Logger
	methodRepo repository.PaymentMethodRepository
}

func NewPaymentMethodUsecase(
	log *logrus.Logger,
	methodRepo repository.PaymentMethodRepository,
) PaymentMethodUsecase {
	return &paymentMethodUsecase{
		log:        log,
		methodRepo: methodRepo,
	}
}

func (u *paymentMethodUsecase) Create(ctx context.Context, req *dto.CreatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method := &entity.PaymentMethod{
		Name: req.Name,
	}

	if err := u.methodRepo.Create(ctx, method); err != nil {
		u.log.Warnf("Failed to create payment method: %+v", err)
		return nil, err
	}

	return converter.PaymentMethodToResponse(method), nil
}

func (u *paymentMethodUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.PaymentMethodResponse, error) {
	method, err := u.methodRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment method %s: %+v", id, err)
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}
	return converter.PaymentMethodToResponse(method), nil
}

func (u *paymentMethodUsecase) GetAll(ctx context.Context, search string, page, limit int) ([]dto.PaymentMethodResponse, int64, error) {
	offset := (page - 1) * limit

	methods, total, err := u.methodRepo.FindAll(ctx, search, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list payment methods: %+v", err)
		return nil, 0, err
	}

	return converter.PaymentMethodsToResponses(methods), total, nil
}

func (u *paymentMethodUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	method, err := u.methodRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment method %s: %+v", id, err)
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}

	method.Name = req.Name

	if err := u.methodRepo.Update(ctx, method); err != nil {
		u.log.Warnf("Failed to update payment method %s: %+v", id, err)
		return nil, err
	}

	return converter.PaymentMethodToResponse(method), nil
}

func (u *paymentMethodUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	method, err := u.methodRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find payment method %s: %+v", id, err)
		return err
	}
	if method == nil {
		return ErrPaymentMethodNotFound
	}

	if err := u.methodRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete payment method %s: %+v", id, err)
		return err
	}

	return nil
}
