package handler

import (
	"time"

	"saldo-ledger/internal/adapter/http/dto"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/apperror"
	"saldo-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles back-office withdrawal processing.
type AdminHandler struct {
	ledgerSvc  ports.LedgerService
	payouts    ports.PayoutNotifier
	deliveries ports.PayoutDeliveryRepository
}

// NewAdminHandler creates a new AdminHandler. payouts and deliveries may be nil.
func NewAdminHandler(ledgerSvc ports.LedgerService, payouts ports.PayoutNotifier, deliveries ports.PayoutDeliveryRepository) *AdminHandler {
	return &AdminHandler{ledgerSvc: ledgerSvc, payouts: payouts, deliveries: deliveries}
}

// GetWithdrawal handles GET /api/v1/admin/withdrawals/:id.
func (h *AdminHandler) GetWithdrawal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid withdrawal id"))
		return
	}

	w, err := h.ledgerSvc.GetWithdrawal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWithdrawalResponse(w))
}

// TransitionWithdrawal handles POST /api/v1/admin/withdrawals/:id/status.
func (h *AdminHandler) TransitionWithdrawal(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid withdrawal id"))
		return
	}

	var req dto.WithdrawalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	w, err := h.ledgerSvc.TransitionWithdrawal(c.Request.Context(), id, domain.WithdrawalStatus(req.Status), req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.payouts != nil {
		_ = h.payouts.NotifyWithdrawal(c.Request.Context(), w)
	}

	response.OK(c, toWithdrawalResponse(w))
}

// ListDeliveries handles GET /api/v1/admin/withdrawals/:id/deliveries.
func (h *AdminHandler) ListDeliveries(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid withdrawal id"))
		return
	}

	deliveries, err := h.deliveries.ListByWithdrawal(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	items := make([]dto.PayoutDeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		items = append(items, dto.PayoutDeliveryResponse{
			ID:          d.ID.String(),
			EventType:   d.EventType,
			Status:      string(d.Status),
			Attempt:     d.Attempt,
			HTTPStatus:  d.HTTPStatus,
			LastError:   d.LastError,
			NextRetryAt: formatTime(d.NextRetryAt),
			CreatedAt:   d.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   d.UpdatedAt.Format(time.RFC3339),
		})
	}

	response.OK(c, items)
}

func toWithdrawalResponse(w *domain.Withdrawal) dto.WithdrawalResponse {
	return dto.WithdrawalResponse{
		ID:          w.ID.String(),
		UserID:      w.UserID.String(),
		Amount:      w.Amount.StringFixed(2),
		Fee:         w.Fee.StringFixed(2),
		NetAmount:   w.NetAmount.StringFixed(2),
		Method:      w.Method,
		AccountName: w.AccountName,
		Status:      string(w.Status),
		AdminNote:   w.AdminNote,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
		ProcessedAt: formatTime(w.ProcessedAt),
		CompletedAt: formatTime(w.CompletedAt),
		RejectedAt:  formatTime(w.RejectedAt),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
