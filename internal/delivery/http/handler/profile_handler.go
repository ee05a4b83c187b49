package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/response"
	"github.com/mensonones/service-pro-api/pkg/validator"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// CreateClient handles client registration. The endpoint fixes the role;
// a role in the payload is ignored.
func (h *ProfileHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.profileUsecase.CreateClient)
}

// CreateProvider handles provider registration. The endpoint fixes the
// role; a role in the payload is ignored.
func (h *ProfileHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.profileUsecase.CreateProvider)
}

func (h *ProfileHandler) create(
	w http.ResponseWriter,
	r *http.Request,
	createFn func(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error),
) {
	var req dto.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := createFn(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create profile")
		return
	}

	response.Success(w, http.StatusCreated, "Profile created successfully", profile)
}

// ListClients returns only profiles with the client role
func (h *ProfileHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	profiles, total, err := h.profileUsecase.ListClients(r.Context(), page, limit)
	if err != nil {
		writeError(w, err, "Failed to list clients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Clients retrieved successfully", profiles, meta(page, limit, total))
}

// ListProviders returns only profiles with the provider role
func (h *ProfileHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	profiles, total, err := h.profileUsecase.ListProviders(r.Context(), page, limit)
	if err != nil {
		writeError(w, err, "Failed to list providers")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Providers retrieved successfully", profiles, meta(page, limit, total))
}

// ListAll returns the full directory regardless of role
func (h *ProfileHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)

	profiles, total, err := h.profileUsecase.ListAll(r.Context(), page, limit)
	if err != nil {
		writeError(w, err, "Failed to list profiles")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Profiles retrieved successfully", profiles, meta(page, limit, total))
}

// GetByID handles getting a profile by ID
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid profile ID", nil)
		return
	}

	profile, err := h.profileUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// Delete always refuses: profiles are administratively protected.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid profile ID", nil)
		return
	}

	if err := h.profileUsecase.Delete(r.Context(), id); err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Profile deleted successfully", nil)
}
