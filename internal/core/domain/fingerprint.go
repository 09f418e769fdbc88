package domain

import "unicode/utf8"

// Fingerprint component limits, matching the security_logs columns.
const (
	MaxFingerprintHashLen  = 255
	MaxTimezoneLen         = 100
	MaxScreenResolutionLen = 50
)

// BrowserFingerprint is the optional client-computed device signature.
// Only CombinedHash takes part in novelty checks; the components are stored
// for investigation.
type BrowserFingerprint struct {
	CanvasHash       string `json:"canvasHash"`
	WebGLHash        string `json:"webglHash"`
	Timezone         string `json:"timezone"`
	ScreenResolution string `json:"screenResolution"`
	CombinedHash     string `json:"combinedHash"`
}

// IsEmpty reports whether no component was supplied.
func (f *BrowserFingerprint) IsEmpty() bool {
	return f == nil || (f.CanvasHash == "" && f.WebGLHash == "" &&
		f.Timezone == "" && f.ScreenResolution == "" && f.CombinedHash == "")
}

// WithinLimits reports whether every component fits its stored width.
func (f *BrowserFingerprint) WithinLimits() bool {
	if f == nil {
		return true
	}
	return utf8.RuneCountInString(f.CanvasHash) <= MaxFingerprintHashLen &&
		utf8.RuneCountInString(f.WebGLHash) <= MaxFingerprintHashLen &&
		utf8.RuneCountInString(f.CombinedHash) <= MaxFingerprintHashLen &&
		utf8.RuneCountInString(f.Timezone) <= MaxTimezoneLen &&
		utf8.RuneCountInString(f.ScreenResolution) <= MaxScreenResolutionLen
}
