package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes the two saldo movements that pass the risk gate.
type TransactionKind string

const (
	TransactionKindTransfer   TransactionKind = "transfer"
	TransactionKindWithdrawal TransactionKind = "withdrawal"
)

// RiskLevel is an ordered severity. Levels only ever escalate within a verdict.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (l RiskLevel) rank() int {
	switch l {
	case RiskLevelMedium:
		return 1
	case RiskLevelHigh:
		return 2
	default:
		return 0
	}
}

// Max returns the more severe of l and other.
func (l RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.rank() > l.rank() {
		return other
	}
	if l == "" {
		return RiskLevelLow
	}
	return l
}

// AtLeast reports whether l is as severe as other.
func (l RiskLevel) AtLeast(other RiskLevel) bool {
	return l.rank() >= other.rank()
}

// SnapshotStatus records how an attempt ended.
type SnapshotStatus string

const (
	SnapshotStatusSuccess SnapshotStatus = "success"
	SnapshotStatusFailed  SnapshotStatus = "failed"
	SnapshotStatusBlocked SnapshotStatus = "blocked"
)

// SecuritySnapshot is the append-only security record written for every
// transfer or withdrawal attempt. Later risk evaluations read these rows.
type SecuritySnapshot struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Kind              TransactionKind `json:"kind"`
	Amount            decimal.Decimal `json:"amount"`
	ReferenceID       *uuid.UUID      `json:"reference_id,omitempty"`
	IPAddress         string          `json:"ip_address"`
	UserAgent         string          `json:"user_agent"`
	SessionID         string          `json:"session_id"`
	DeviceFingerprint string          `json:"device_fingerprint"`
	CanvasHash        string          `json:"canvas_hash,omitempty"`
	WebGLHash         string          `json:"webgl_hash,omitempty"`
	Timezone          string          `json:"timezone,omitempty"`
	ScreenResolution  string          `json:"screen_resolution,omitempty"`
	FingerprintHash   string          `json:"fingerprint_hash,omitempty"`
	Country           string          `json:"country,omitempty"`
	City              string          `json:"city,omitempty"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	ISP               string          `json:"isp,omitempty"`
	IsVPNProxy        bool            `json:"is_vpn_proxy"`
	RiskLevel         RiskLevel       `json:"risk_level"`
	Status            SnapshotStatus  `json:"status"`
	FailReason        *string         `json:"fail_reason,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ApplyGeo copies location fields from g; a nil g leaves them empty.
func (s *SecuritySnapshot) ApplyGeo(g *GeoData) {
	if g == nil {
		return
	}
	s.Country = g.Country
	s.City = g.City
	s.Latitude = g.Latitude
	s.Longitude = g.Longitude
	s.ISP = g.ISP
	s.IsVPNProxy = g.IsVPNProxy
}

// ApplyFingerprint copies the client fingerprint components.
func (s *SecuritySnapshot) ApplyFingerprint(f *BrowserFingerprint) {
	if f == nil {
		return
	}
	s.CanvasHash = f.CanvasHash
	s.WebGLHash = f.WebGLHash
	s.Timezone = f.Timezone
	s.ScreenResolution = f.ScreenResolution
	s.FingerprintHash = f.CombinedHash
}

// MaxUserAgentLen bounds the stored user agent; the column itself is TEXT.
const MaxUserAgentLen = 512

// FitColumns clips free-form fields to their stored widths so that an
// oversized value cannot make the row fail to persist.
func (s *SecuritySnapshot) FitColumns() {
	s.IPAddress = clip(s.IPAddress, 45)
	s.UserAgent = clip(s.UserAgent, MaxUserAgentLen)
	s.SessionID = clip(s.SessionID, 255)
	s.DeviceFingerprint = clip(s.DeviceFingerprint, 64)
	s.CanvasHash = clip(s.CanvasHash, MaxFingerprintHashLen)
	s.WebGLHash = clip(s.WebGLHash, MaxFingerprintHashLen)
	s.Timezone = clip(s.Timezone, MaxTimezoneLen)
	s.ScreenResolution = clip(s.ScreenResolution, MaxScreenResolutionLen)
	s.FingerprintHash = clip(s.FingerprintHash, MaxFingerprintHashLen)
	s.Country = clip(s.Country, 100)
	s.City = clip(s.City, 100)
	s.ISP = clip(s.ISP, 255)
}

// clip truncates s to at most n runes. Invalid UTF-8 is replaced first so
// the result is always storable.
func clip(s string, n int) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
