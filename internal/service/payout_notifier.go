package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultPayoutRetryIntervals are the waits between delivery attempts.
var defaultPayoutRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Payout event types
const (
	EventWithdrawalCreated    = "WITHDRAWAL_CREATED"
	EventWithdrawalProcessing = "WITHDRAWAL_PROCESSING"
	EventWithdrawalCompleted  = "WITHDRAWAL_COMPLETED"
	EventWithdrawalRejected   = "WITHDRAWAL_REJECTED"
)

// Header names carried by every payout delivery.
const (
	HeaderPayoutTimestamp = "X-Payout-Timestamp"
	HeaderPayoutSignature = "X-Payout-Signature"
)

// PayoutPayload is the JSON structure posted to the payout webhook.
type PayoutPayload struct {
	EventType string            `json:"event_type"`
	Data      PayoutPayloadData `json:"data"`
	Signature string            `json:"signature"`
}

// PayoutPayloadData holds the withdrawal details the payout rail needs.
type PayoutPayloadData struct {
	WithdrawalID  string `json:"withdrawal_id"`
	UserID        string `json:"user_id"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Fee           string `json:"fee"`
	NetAmount     string `json:"net_amount"`
	Method        string `json:"method"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Note          string `json:"note,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// PayoutNotifierImpl implements ports.PayoutNotifier. Deliveries run in
// background goroutines and are retried on a fixed schedule.
type PayoutNotifierImpl struct {
	url        string
	secret     string
	timeout    time.Duration
	encSvc     ports.EncryptionService
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	deliveries ports.PayoutDeliveryRepository
	intervals  []time.Duration
	now        func() time.Time
	wg         sync.WaitGroup
	stop       chan struct{}
	stopOnce   sync.Once
	log        zerolog.Logger
}

// NewPayoutNotifier creates a new payout notifier. An empty webhook URL
// disables notifications. deliveries may be nil.
func NewPayoutNotifier(
	cfg config.PayoutConfig,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	deliveries ports.PayoutDeliveryRepository,
	log zerolog.Logger,
) *PayoutNotifierImpl {
	return &PayoutNotifierImpl{
		url:        cfg.WebhookURL,
		secret:     cfg.Secret,
		timeout:    cfg.Timeout,
		encSvc:     encSvc,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		deliveries: deliveries,
		intervals:  defaultPayoutRetryIntervals,
		now:        time.Now,
		stop:       make(chan struct{}),
		log:        log,
	}
}

// NotifyWithdrawal builds and signs the event synchronously, then delivers
// it asynchronously.
func (s *PayoutNotifierImpl) NotifyWithdrawal(ctx context.Context, w *domain.Withdrawal) error {
	if s.url == "" {
		s.log.Debug().Str("withdrawal_id", w.ID.String()).Msg("payout: no webhook URL configured, skipping")
		return nil
	}

	accountNumber, err := s.encSvc.Decrypt(w.AccountNumberEnc, w.UserID.String())
	if err != nil {
		s.log.Error().Err(err).Str("withdrawal_id", w.ID.String()).Msg("payout: failed to unseal account number")
		return fmt.Errorf("unseal account number: %w", err)
	}

	data := PayoutPayloadData{
		WithdrawalID:  w.ID.String(),
		UserID:        w.UserID.String(),
		Status:        string(w.Status),
		Amount:        w.Amount.StringFixed(2),
		Fee:           w.Fee.StringFixed(2),
		NetAmount:     w.NetAmount.StringFixed(2),
		Method:        w.Method,
		AccountNumber: accountNumber,
		AccountName:   w.AccountName,
		Timestamp:     s.now().Unix(),
	}
	if w.AdminNote != nil {
		data.Note = *w.AdminNote
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payout data: %w", err)
	}

	payload := PayoutPayload{
		EventType: payoutEventType(w.Status),
		Data:      data,
		Signature: s.sigSvc.Sign(s.secret, string(dataBytes)),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payout payload: %w", err)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.deliverWithRetries(context.WithoutCancel(ctx), body, w, payload.EventType)
	}()

	return nil
}

// Stop abandons scheduled retries. A delivery waiting for its next attempt is
// recorded as failed; an attempt already on the wire runs to completion.
func (s *PayoutNotifierImpl) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Wait blocks until every in-flight delivery has finished.
func (s *PayoutNotifierImpl) Wait() {
	s.wg.Wait()
}

func payoutEventType(status domain.WithdrawalStatus) string {
	switch status {
	case domain.WithdrawalStatusPending:
		return EventWithdrawalCreated
	case domain.WithdrawalStatusProcessing:
		return EventWithdrawalProcessing
	case domain.WithdrawalStatusCompleted:
		return EventWithdrawalCompleted
	case domain.WithdrawalStatusRejected:
		return EventWithdrawalRejected
	}
	return "WITHDRAWAL_" + strings.ToUpper(string(status))
}

func (s *PayoutNotifierImpl) deliverWithRetries(ctx context.Context, body []byte, w *domain.Withdrawal, eventType string) {
	withdrawalID := w.ID.String()
	now := s.now().UTC()
	record := &domain.PayoutDelivery{
		ID:           uuid.New(),
		WithdrawalID: w.ID,
		EventType:    eventType,
		WebhookURL:   s.url,
		Status:       domain.PayoutDeliveryPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.trackCreate(ctx, record)

	for attempt := 0; attempt <= len(s.intervals); attempt++ {
		if attempt > 0 && !s.waitRetry(s.intervals[attempt-1]) {
			s.log.Warn().Str("withdrawal_id", withdrawalID).Int("attempt", attempt).Msg("payout: shutting down, retry abandoned")
			reason := "shutdown before retry"
			record.Status = domain.PayoutDeliveryFailed
			record.LastError = &reason
			record.NextRetryAt = nil
			s.trackUpdate(ctx, record)
			return
		}

		status, err := s.deliver(ctx, body)
		record.Attempt = attempt + 1
		record.HTTPStatus = nil
		record.NextRetryAt = nil
		if status > 0 {
			record.HTTPStatus = &status
		}

		if err == nil && status >= 200 && status < 300 {
			s.log.Info().Str("withdrawal_id", withdrawalID).Int("attempt", attempt+1).Int("status", status).Msg("payout: delivered successfully")
			record.Status = domain.PayoutDeliveryDelivered
			record.LastError = nil
			s.trackUpdate(ctx, record)
			return
		}

		var lastErr string
		if err != nil {
			lastErr = err.Error()
			s.log.Warn().Err(err).Str("withdrawal_id", withdrawalID).Int("attempt", attempt+1).Msg("payout: delivery failed")
		} else {
			lastErr = fmt.Sprintf("non-2xx response: %d", status)
			s.log.Warn().Str("withdrawal_id", withdrawalID).Int("attempt", attempt+1).Int("status", status).Msg("payout: non-2xx response, retrying")
		}
		record.LastError = &lastErr
		if attempt < len(s.intervals) {
			next := s.now().UTC().Add(s.intervals[attempt])
			record.NextRetryAt = &next
		}
		s.trackUpdate(ctx, record)
	}

	s.log.Error().Str("withdrawal_id", withdrawalID).Msg("payout: all retry attempts exhausted")
	record.Status = domain.PayoutDeliveryFailed
	s.trackUpdate(ctx, record)
}

// waitRetry sleeps for d and reports false if Stop was called first.
func (s *PayoutNotifierImpl) waitRetry(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-s.stop:
		return false
	}
}

func (s *PayoutNotifierImpl) trackCreate(ctx context.Context, record *domain.PayoutDelivery) {
	if s.deliveries == nil {
		return
	}
	if err := s.deliveries.Create(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", record.WithdrawalID.String()).Msg("payout: failed to create delivery log")
	}
}

func (s *PayoutNotifierImpl) trackUpdate(ctx context.Context, record *domain.PayoutDelivery) {
	if s.deliveries == nil {
		return
	}
	record.UpdatedAt = s.now().UTC()
	if err := s.deliveries.Update(ctx, record); err != nil {
		s.log.Warn().Err(err).Str("withdrawal_id", record.WithdrawalID.String()).Msg("payout: failed to update delivery log")
	}
}

func (s *PayoutNotifierImpl) deliver(ctx context.Context, body []byte) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	ts := s.now().Unix()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderPayoutTimestamp, strconv.FormatInt(ts, 10))
	req.Header.Set(HeaderPayoutSignature, s.sigSvc.Sign(s.secret, SignedPayload(ts, body)))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
