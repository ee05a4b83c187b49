package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/mensonones/service-pro-api/internal/delivery/dto"
	"github.com/mensonones/service-pro-api/internal/usecase"
	"github.com/mensonones/service-pro-api/pkg/response"
	"github.com/mensonones/service-pro-api/pkg/validator"
)

type PaymentMethodHandler struct {
	methodUsecase usecase.PaymentMethodUsecase
	validator     *validator.CustomValidator
}

func NewPaymentMethodHandler(methodUsecase usecase.PaymentMethodUsecase, validator *validator.CustomValidator) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		methodUsecase: methodUsecase,
		validator:     validator,
	}
}

// Create handles payment method creation
func (h *PaymentMethodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	method, err := h.methodUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create payment method")
		return
	}

	response.Success(w, http.StatusCreated, "Payment method created successfully", method)
}

// GetAll handles listing with optional name search
func (h *PaymentMethodHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, limit := pagination(r)

	methods, total, err := h.methodUsecase.GetAll(r.Context(), search, page, limit)
	if err != nil {
		writeError(w, err, "Failed to get payment methods")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Payment methods retrieved successfully", methods, meta(page, limit, total))
}

// GetByID handles getting a payment method by ID
func (h *PaymentMethodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment method ID", nil)
		return
	}

	method, err := h.methodUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to get payment method")
		return
	}

	response.Success(w, http.StatusOK, "Payment method retrieved successfully", method)
}

// Update handles payment method renaming
func (h *PaymentMethodHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment method ID", nil)
		return
	}

	var req dto.UpdatePaymentMethodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	method, err := h.methodUsecase.Update(r.Context(), id, &req)
	if err != nil {
		writeError(w, err, "Failed to update payment method")
		return
	}

	response.Success(w, http.StatusOK, "Payment method updated successfully", method)
}

// Delete handles payment method deletion
func (h *PaymentMethodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid payment method ID", nil)
		return
	}

	if err := h.methodUsecase.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete payment method")
		return
	}

	response.Success(w, http.StatusOK, "Payment method deleted successfully", nil)
}
