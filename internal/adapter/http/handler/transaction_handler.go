package handler

import (
	"time"

	"saldo-ledger/internal/adapter/http/dto"
	"saldo-ledger/internal/adapter/http/middleware"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/internal/service"
	"saldo-ledger/pkg/apperror"
	"saldo-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionHandler handles the user-facing saldo endpoints.
type TransactionHandler struct {
	txnSvc    ports.TransactionService
	ledgerSvc ports.LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txnSvc ports.TransactionService, ledgerSvc ports.LedgerService) *TransactionHandler {
	return &TransactionHandler{txnSvc: txnSvc, ledgerSvc: ledgerSvc}
}

// Transfer handles POST /api/v1/transfers.
func (h *TransactionHandler) Transfer(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.txnSvc.Transfer(c.Request.Context(), ports.TransferRequest{
		SenderID:       userID,
		RecipientEmail: req.RecipientEmail,
		Amount:         req.Amount,
		Notes:          req.Notes,
		Request:        middleware.RequestContext(c, service.ParseFingerprint(req.Fingerprint)),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(outcome))
}

// Withdraw handles POST /api/v1/withdrawals.
func (h *TransactionHandler) Withdraw(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.txnSvc.Withdraw(c.Request.Context(), ports.WithdrawalRequest{
		UserID:        userID,
		Amount:        req.Amount,
		Method:        req.Method,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		Request:       middleware.RequestContext(c, service.ParseFingerprint(req.Fingerprint)),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTransactionResponse(outcome))
}

// GetBalance handles GET /api/v1/balance.
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.ledgerSvc.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{Balance: balance.StringFixed(2)})
}

// GetTransfer handles GET /api/v1/transfers/:id.
func (h *TransactionHandler) GetTransfer(c *gin.Context) {
	userID, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transfer id"))
		return
	}

	t, err := h.ledgerSvc.GetTransfer(c.Request.Context(), userID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TransferResponse{
		ID:         t.ID.String(),
		SenderID:   t.SenderID.String(),
		ReceiverID: t.ReceiverID.String(),
		Amount:     t.Amount.StringFixed(2),
		Notes:      t.Notes,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	})
}

func toTransactionResponse(o *domain.TransactionOutcome) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		Kind:       string(o.Kind),
		NewBalance: o.NewBalance.StringFixed(2),
		RiskLevel:  string(o.RiskLevel),
		DelayMs:    o.Delay.Milliseconds(),
	}
	if o.TransferID != nil {
		id := o.TransferID.String()
		resp.TransferID = &id
	}
	if o.WithdrawalID != nil {
		id := o.WithdrawalID.String()
		resp.WithdrawalID = &id
	}
	return resp
}
