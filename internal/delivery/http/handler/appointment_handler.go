package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/domain/entity"
	"github.com/mensonones/service-pro-api/internal/domain/repository"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/response"
	"github.com/mensonones/service-pro-api/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create handles appointment booking
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// Update handles the guarded appointment save path
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// GetByID handles getting an appointment by ID
func (h *AppointmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// GetAll handles appointment listing with status/client/provider filters
func (h *AppointmentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	filter := repository.AppointmentFilter{
		Status: entity.AppointmentStatus(r.URL.Query().Get("status")),
	}
	if raw := r.URL.Query().Get("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid client_id filter", nil)
			return
		}
		filter.ClientID = id
	}
	if raw := r.URL.Query().Get("provider_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid provider_id filter", nil)
			return
		}
		filter.ProviderID = id
	}

	appointments, total, err := h.appointmentUsecase.GetAll(r.Context(), filter, page, limit)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, meta(page, limit, total))
}

// MarkCompleted handles the privileged administrative completion batch
func (h *AppointmentHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.appointmentUsecase.MarkCompleted)
}

// MarkCancelled handles the administrative cancellation batch
func (h *AppointmentHandler) MarkCancelled(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.appointmentUsecase.MarkCancelled)
}

func (h *AppointmentHandler) bulk(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, ids []uuid.UUID) (*dto.BulkActionResponse, error),
) {
	var req dto.BulkActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := action(r.Context(), req.AppointmentIDs)
	if err != nil {
		writeError(w, err, "Failed to apply bulk action")
		return
	}

	response.Success(w, http.StatusOK, "Bulk action applied", result)
}
