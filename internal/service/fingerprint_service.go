package service

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"saldo-ledger/internal/core/domain"

	"golang.org/x/crypto/blake2b"
)

// FingerprintService implements ports.FingerprintComparator.
type FingerprintService struct {
	key []byte
}

// NewFingerprintService creates a comparator whose device ids are keyed
// with secret. Secrets longer than a BLAKE2b key are reduced by hashing.
func NewFingerprintService(secret string) *FingerprintService {
	key := []byte(secret)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	return &FingerprintService{key: key}
}

// IsNovel reports whether current is absent from a non-empty history.
// A user without history, or a request without a fingerprint, is never novel.
func (s *FingerprintService) IsNovel(current string, known []string) bool {
	if current == "" || len(known) == 0 {
		return false
	}
	for _, k := range known {
		if k == current {
			return false
		}
	}
	return true
}

// DeviceID derives a stable 64-char identifier from the user agent and the
// fingerprint components.
func (s *FingerprintService) DeviceID(userAgent string, fp *domain.BrowserFingerprint) string {
	h, err := blake2b.New256(s.key)
	if err != nil {
		// unreachable: key length is bounded in the constructor
		panic(err)
	}

	parts := []string{userAgent}
	if fp != nil {
		parts = append(parts, fp.CanvasHash, fp.WebGLHash, fp.Timezone, fp.ScreenResolution, fp.CombinedHash)
	}
	h.Write([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h.Sum(nil))
}

// ParseFingerprint decodes the optional client fingerprint object.
// Malformed, empty or oversized input yields nil: a missing fingerprint only
// skips the novelty check.
func ParseFingerprint(raw json.RawMessage) *domain.BrowserFingerprint {
	if len(raw) == 0 {
		return nil
	}
	var fp domain.BrowserFingerprint
	if err := json.Unmarshal(raw, &fp); err != nil || fp.IsEmpty() || !fp.WithinLimits() {
		return nil
	}
	return &fp
}
