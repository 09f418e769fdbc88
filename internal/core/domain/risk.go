package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestContext is what the transport layer knows about the caller.
type RequestContext struct {
	IPAddress   string
	UserAgent   string
	SessionID   string
	Fingerprint *BrowserFingerprint
}

// RiskDelta is the contribution of a single risk rule.
type RiskDelta struct {
	Level  RiskLevel
	Delay  time.Duration
	Block  bool
	Err    error // set on blocking deltas
	Reason string
}

// IsZero reports whether the delta changes nothing.
func (d RiskDelta) IsZero() bool {
	return (d.Level == "" || d.Level == RiskLevelLow) && d.Delay == 0 && !d.Block
}

// Verdict is the folded outcome of all risk rules for one attempt.
type Verdict struct {
	Allowed       bool
	RiskLevel     RiskLevel
	RequiresDelay bool
	Delay         time.Duration
	Geo           *GeoData
	Reasons       []string
	Err           error
}

// NewVerdict returns an allowing, low-risk verdict.
func NewVerdict() *Verdict {
	return &Verdict{Allowed: true, RiskLevel: RiskLevelLow}
}

// Apply folds d into v: the level is the maximum seen, the delay is the
// maximum requested, and a blocking delta denies the attempt.
func (v *Verdict) Apply(d RiskDelta) {
	if d.IsZero() {
		return
	}
	v.RiskLevel = v.RiskLevel.Max(d.Level)
	if d.Delay > v.Delay {
		v.Delay = d.Delay
	}
	v.RequiresDelay = v.Delay > 0
	if d.Reason != "" {
		v.Reasons = append(v.Reasons, d.Reason)
	}
	if d.Block {
		v.Allowed = false
		v.Err = d.Err
	}
}

// Deny marks v as refused without a risk signal, e.g. on infrastructure failure.
func (v *Verdict) Deny(err error, reason string) {
	v.Allowed = false
	v.Err = err
	if reason != "" {
		v.Reasons = append(v.Reasons, reason)
	}
}

// TransactionOutcome is the orchestrator result handed back to the caller.
type TransactionOutcome struct {
	Allowed      bool            `json:"allowed"`
	Kind         TransactionKind `json:"kind"`
	TransferID   *uuid.UUID      `json:"transfer_id,omitempty"`
	WithdrawalID *uuid.UUID      `json:"withdrawal_id,omitempty"`
	NewBalance   decimal.Decimal `json:"new_balance"`
	RiskLevel    RiskLevel       `json:"risk_level"`
	Delay        time.Duration   `json:"-"`
}
