package usecase_test

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/domain/repository"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// ---------------------------------------------------------------------------
// In-memory repositories
// ---------------------------------------------------------------------------

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) add(user *entity.User) {
	r.users[user.ID] = user
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (r *fakeProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	profile.ID = uuid.New()
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Profile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProfileRepo) FindByRole(_ context.Context, role entity.ProfileRole, limit, offset int) ([]entity.Profile, int64, error) {
	var matched []entity.Profile
	for _, profile := range r.profiles {
		if profile.Role == role {
			matched = append(matched, *profile)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeProfileRepo) FindAll(_ context.Context, limit, offset int) ([]entity.Profile, int64, error) {
	var all []entity.Profile
	for _, profile := range r.profiles {
		all = append(all, *profile)
	}
	return all, int64(len(all)), nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[uuid.UUID]*entity.Service)}
}

func (r *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	service.ID = uuid.New()
	stored := *service
	r.services[service.ID] = &stored
	return nil
}

func (r *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copied := *service
	return &copied, nil
}

func (r *fakeServiceRepo) FindAll(_ context.Context, search string, limit, offset int) ([]entity.Service, int64, error) {
	var matched []entity.Service
	for _, service := range r.services {
		if search == "" || strings.Contains(strings.ToLower(service.Name), strings.ToLower(search)) {
			matched = append(matched, *service)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeServiceRepo) Update(_ context.Context, service *entity.Service) error {
	stored := *service
	r.services[service.ID] = &stored
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.services, id)
	return nil
}

type fakeMethodRepo struct {
	methods map[uuid.UUID]*entity.PaymentMethod
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[uuid.UUID]*entity.PaymentMethod)}
}

func (r *fakeMethodRepo) Create(_ context.Context, method *entity.PaymentMethod) error {
	method.ID = uuid.New()
	stored := *method
	r.methods[method.ID] = &stored
	return nil
}

func (r *fakeMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	method, ok := r.methods[id]
	if !ok {
		return nil, nil
	}
	copied := *method
	return &copied, nil
}

func (r *fakeMethodRepo) FindAll(_ context.Context, search string, limit, offset int) ([]entity.PaymentMethod, int64, error) {
	var matched []entity.PaymentMethod
	for _, method := range r.methods {
		if search == "" || strings.Contains(strings.ToLower(method.Name), strings.ToLower(search)) {
			matched = append(matched, *method)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeMethodRepo) Update(_ context.Context, method *entity.PaymentMethod) error {
	stored := *method
	r.methods[method.ID] = &stored
	return nil
}

func (r *fakeMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.methods, id)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *entity.Appointment) error {
	appointment.ID = uuid.New()
	appointment.Version = 1
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Appointment, error) {
	var found []entity.Appointment
	for _, id := range ids {
		if appointment, ok := r.appointments[id]; ok {
			found = append(found, *appointment)
		}
	}
	return found, nil
}

func (r *fakeAppointmentRepo) FindAll(_ context.Context, filter repository.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	var matched []entity.Appointment
	for _, appointment := range r.appointments {
		if filter.Status != "" && appointment.Status != filter.Status {
			continue
		}
		if filter.ClientID != uuid.Nil && appointment.ClientID != filter.ClientID {
			continue
		}
		if filter.ProviderID != uuid.Nil && appointment.ProviderID != filter.ProviderID {
			continue
		}
		matched = append(matched, *appointment)
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeAppointmentRepo) UpdateVersioned(_ context.Context, appointment *entity.Appointment) (int64, error) {
	stored, ok := r.appointments[appointment.ID]
	if !ok || stored.Version != appointment.Version {
		return 0, nil
	}
	updated := *appointment
	updated.Version++
	r.appointments[appointment.ID] = &updated
	appointment.Version++
	return 1, nil
}

func (r *fakeAppointmentRepo) MarkCompleted(_ context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	for _, id := range ids {
		if appointment, ok := r.appointments[id]; ok {
			appointment.Status = entity.AppointmentStatusCompleted
			appointment.Version++
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentRepo) CancelScheduled(_ context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	for _, id := range ids {
		if appointment, ok := r.appointments[id]; ok && appointment.Status == entity.AppointmentStatusScheduled {
			appointment.Status = entity.AppointmentStatusCancelled
			appointment.Version++
			count++
		}
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Cache and notifier stubs
// ---------------------------------------------------------------------------

type noopCache struct{}

func (noopCache) Get(_ context.Context, _ uuid.UUID) *entity.Service { return nil }
func (noopCache) Set(_ context.Context, _ *entity.Service)           {}
func (noopCache) Invalidate(_ context.Context, _ uuid.UUID)          {}

type recordingNotifier struct {
	routingKeys []string
}

func (n *recordingNotifier) AppointmentChanged(_ context.Context, routingKey string, _ *entity.Appointment) {
	n.routingKeys = append(n.routingKeys, routingKey)
}

func (n *recordingNotifier) BulkStatusChanged(_ context.Context, routingKey string, _ []uuid.UUID, _ entity.AppointmentStatus) {
	n.routingKeys = append(n.routingKeys, routingKey)
}
