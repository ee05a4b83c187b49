package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/converter"
	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/domain/repository"
	"github.com/mensonones/service-pro-api/internal/service"
	"github.com/mensonones/service-pro-api/pkg/apperr"
)

var (
	ErrAppointmentNotFound  = apperr.NotFound("appointment not found")
	ErrAppointmentsNotFound = apperr.NotFound("one or more appointments not found")
	ErrClientRoleMismatch   = apperr.Validation("client reference must be a profile with role client")
	ErrProviderRoleMismatch = apperr.Validation("provider reference must be a profile with role provider")
	ErrAppointmentConflict  = apperr.Conflict("appointment was modified concurrently, reload and retry")
)

// Notifier enqueues appointment work for the external task queue.
// Implemented by service.NotificationService.
type Notifier interface {
	AppointmentChanged(ctx context.Context, routingKey string, appointment *entity.Appointment)
	BulkStatusChanged(ctx context.Context, routingKey string, ids []uuid.UUID, status entity.AppointmentStatus)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, filter repository.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error)
	MarkCompleted(ctx context.Context, ids []uuid.UUID) (*dto.BulkActionResponse, error)
	MarkCancelled(ctx context.Context, ids []uuid.UUID) (*dto.BulkActionResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	serviceRepo     repository.ServiceRepository
	profileRepo     repository.ProfileRepository
	methodRepo      repository.PaymentMethodRepository
	cache           ServiceCache
	notifier        Notifier
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	serviceRepo repository.ServiceRepository,
	profileRepo repository.ProfileRepository,
	methodRepo repository.PaymentMethodRepository,
	cache ServiceCache,
	notifier Notifier,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		profileRepo:     profileRepo,
		methodRepo:      methodRepo,
		cache:           cache,
		notifier:        notifier,
	}
}

// Create books a client with a provider. The stored price is always the
// service's current price; whatever the caller sent is discarded.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	svc, err := u.lookupService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	client, err := u.lookupProfile(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if !client.IsClient() {
		return nil, ErrClientRoleMismatch
	}

	provider, err := u.lookupProfile(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !provider.IsProvider() {
		return nil, ErrProviderRoleMismatch
	}

	method, err := u.methodRepo.FindByID(ctx, req.PaymentMethodID)
	if err != nil {
		u.log.Warnf("Failed to find payment method %s: %+v", req.PaymentMethodID, err)
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}

	appointment := &entity.Appointment{
		ServiceID:       svc.ID,
		ClientID:        client.ID,
		ProviderID:      provider.ID,
		ScheduledAt:     req.ScheduledAt,
		PaymentMethodID: method.ID,
		Status:          entity.AppointmentStatusScheduled,
	}
	appointment.AdoptServicePrice(svc.Price)

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.notifier.AppointmentChanged(ctx, service.TaskAppointmentCreated, appointment)

	u.log.Infof("Appointment created: id=%s, service=%s, price=%s", appointment.ID, svc.ID, appointment.Price)
	return converter.AppointmentToResponse(appointment), nil
}

// Update is the guarded save path. The terminal-status check runs against
// the persisted row, and the write is versioned so two concurrent saves
// cannot both slip past the guard.
func (u *appointmentUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	persisted, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if persisted == nil {
		return nil, ErrAppointmentNotFound
	}

	method, err := u.methodRepo.FindByID(ctx, req.PaymentMethodID)
	if err != nil {
		u.log.Warnf("Failed to find payment method %s: %+v", req.PaymentMethodID, err)
		return nil, err
	}
	if method == nil {
		return nil, ErrPaymentMethodNotFound
	}

	updated := *persisted
	updated.ScheduledAt = req.ScheduledAt
	updated.PaymentMethodID = method.ID
	updated.Status = entity.AppointmentStatus(req.Status)

	if err := updated.ValidateStatusChange(persisted); err != nil {
		return nil, apperr.ValidationWrap(err)
	}

	svc, err := u.lookupService(ctx, updated.ServiceID)
	if err != nil {
		return nil, err
	}
	updated.AdoptServicePrice(svc.Price)

	rows, err := u.appointmentRepo.UpdateVersioned(ctx, &updated)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentConflict
	}

	if updated.Status != persisted.Status {
		u.notifier.AppointmentChanged(ctx, routingKeyFor(updated.Status), &updated)
	}

	u.log.Infof("Appointment updated: id=%s, status=%s, price=%s", updated.ID, updated.Status, updated.Price)
	return converter.AppointmentToResponse(&updated), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context, filter repository.AppointmentFilter, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	offset := (page - 1) * limit

	appointments, total, err := u.appointmentRepo.FindAll(ctx, filter, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, 0, err
	}

	return converter.AppointmentsToResponses(appointments), total, nil
}

// MarkCompleted is the privileged administrative batch. It writes directly
// at the storage layer with no status precondition, so unlike Update it
// can force a cancelled appointment back to completed. Callers must treat
// it as an override, not a normal transition.
func (u *appointmentUsecase) MarkCompleted(ctx context.Context, ids []uuid.UUID) (*dto.BulkActionResponse, error) {
	if _, err := u.resolveTargets(ctx, ids); err != nil {
		return nil, err
	}

	count, err := u.appointmentRepo.MarkCompleted(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to mark appointments completed: %+v", err)
		return nil, err
	}

	u.notifier.BulkStatusChanged(ctx, service.TaskAppointmentCompleted, ids, entity.AppointmentStatusCompleted)

	u.log.Infof("Appointments marked completed: count=%d", count)
	return &dto.BulkActionResponse{
		Outcomes: []dto.BulkOutcome{
			{
				Category: dto.OutcomeSuccess,
				Message:  fmt.Sprintf("%d appointment(s) marked as completed", count),
				Count:    count,
			},
		},
	}, nil
}

// MarkCancelled cancels the still-scheduled subset of the selection and
// reports the rest as ineligible. Partial ineligibility is data in the
// outcome, not an error; only an unresolvable selection fails.
func (u *appointmentUsecase) MarkCancelled(ctx context.Context, ids []uuid.UUID) (*dto.BulkActionResponse, error) {
	targets, err := u.resolveTargets(ctx, ids)
	if err != nil {
		return nil, err
	}

	var eligible []uuid.UUID
	var ineligible int64
	for _, target := range targets {
		if target.IsScheduled() {
			eligible = append(eligible, target.ID)
		} else {
			ineligible++
		}
	}

	var cancelled int64
	if len(eligible) > 0 {
		cancelled, err = u.appointmentRepo.CancelScheduled(ctx, eligible)
		if err != nil {
			u.log.Warnf("Failed to cancel appointments: %+v", err)
			return nil, err
		}
	}

	var outcomes []dto.BulkOutcome
	if ineligible > 0 {
		outcomes = append(outcomes, dto.BulkOutcome{
			Category: dto.OutcomeError,
			Message:  fmt.Sprintf("%d appointment(s) are not scheduled and were not cancelled", ineligible),
			Count:    ineligible,
		})
	}
	if cancelled > 0 {
		outcomes = append(outcomes, dto.BulkOutcome{
			Category: dto.OutcomeSuccess,
			Message:  fmt.Sprintf("%d appointment(s) cancelled", cancelled),
			Count:    cancelled,
		})
		u.notifier.BulkStatusChanged(ctx, service.TaskAppointmentCancelled, eligible, entity.AppointmentStatusCancelled)
	} else {
		outcomes = append(outcomes, dto.BulkOutcome{
			Category: dto.OutcomeWarning,
			Message:  "no appointments were cancelled",
			Count:    0,
		})
	}

	u.log.Infof("Appointments cancel batch: cancelled=%d, ineligible=%d", cancelled, ineligible)
	return &dto.BulkActionResponse{Outcomes: outcomes}, nil
}

// resolveTargets loads the selection and rejects it outright when any id
// is unknown.
func (u *appointmentUsecase) resolveTargets(ctx context.Context, ids []uuid.UUID) ([]entity.Appointment, error) {
	targets, err := u.appointmentRepo.FindByIDs(ctx, ids)
	if err != nil {
		u.log.Warnf("Failed to load appointment selection: %+v", err)
		return nil, err
	}
	if len(targets) != len(ids) {
		return nil, ErrAppointmentsNotFound
	}
	return targets, nil
}

// lookupService reads through the catalog cache, falling back to Postgres.
func (u *appointmentUsecase) lookupService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
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

func (u *appointmentUsecase) lookupProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := u.profileRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find profile %s: %+v", id, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func routingKeyFor(status entity.AppointmentStatus) string {
	switch status {
	case entity.AppointmentStatusCompleted:
		return service.TaskAppointmentCompleted
	case entity.AppointmentStatusCancelled:
		return service.TaskAppointmentCancelled
	default:
		return service.TaskAppointmentCreated
	}
}
