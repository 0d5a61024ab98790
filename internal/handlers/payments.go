package handlers

import (
	"net/http"

	"github.com/benx421/payment-gateway/gateway/internal/models"
	"github.com/benx421/payment-gateway/gateway/internal/service"
)

// CreatePayment handles POST /api/v1/payments
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req models.PostPaymentRequest
	if err := decodeJSONBody(r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "invalid_request",
			Message: "request body must be valid JSON",
		})
		return
	}

	payment, err := h.paymentService.Submit(r.Context(), &req)
	if err != nil {
		h.handleSubmitError(w, payment, err)
		return
	}

	h.writeJSON(w, http.StatusOK, newPaymentResponse(payment))
}

// GetPayment handles GET /api/v1/payments/{paymentId}
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := parsePaymentID(r.PathValue("paymentId"))
	if err != nil {
		h.writeNotFound(w)
		return
	}

	payment, err := h.paymentService.Get(r.Context(), paymentID)
	if err != nil {
		svcErr := extractServiceError(err)
		if svcErr == nil || svcErr.Code != service.ErrCodePaymentNotFound {
			h.logger.Error("unexpected error retrieving payment", "error", err)
			h.writeJSON(w, http.StatusInternalServerError, errorResponse{
				Error:   "internal_error",
				Message: "internal error",
			})
			return
		}
		h.writeNotFound(w)
		return
	}

	h.writeJSON(w, http.StatusOK, newPaymentResponse(payment))
}

// handleSubmitError maps service errors to HTTP responses. Both rejection and
// gateway fault responses still carry the persisted record so the caller can
// retrieve it later by id.
func (h *Handler) handleSubmitError(w http.ResponseWriter, payment *models.Payment, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil || payment == nil {
		h.logger.Error("unexpected error during payment submission", "error", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: "internal error",
		})
		return
	}

	switch svcErr.Code {
	case service.ErrCodeValidationFailed:
		resp := newPaymentResponse(payment)
		resp.ValidationErrors = svcErr.Violations
		h.writeJSON(w, http.StatusBadRequest, resp)
	default:
		// Gateway faults stay opaque; the record status already says enough.
		h.writeJSON(w, http.StatusInternalServerError, newPaymentResponse(payment))
	}
}

func (h *Handler) writeNotFound(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusNotFound, errorResponse{
		Error:   "not_found",
		Message: "payment not found",
	})
}
