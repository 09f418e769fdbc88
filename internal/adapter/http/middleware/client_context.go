package middleware

import (
	"net/netip"

	"saldo-ledger/internal/core/domain"

	"github.com/gin-gonic/gin"
)

// TrustProxies configures how the engine resolves client addresses.
// Forwarding headers are read only when the socket peer is one of
// trustedProxies. platform names a header written by a fronting CDN
// (gin.PlatformCloudflare) and is taken as is, so it must only be set when
// every request passes through that CDN.
func TrustProxies(r *gin.Engine, trustedProxies []string, headers []string, platform string) error {
	r.ForwardedByClientIP = true
	if len(headers) > 0 {
		r.RemoteIPHeaders = headers
	}
	r.TrustedPlatform = platform
	return r.SetTrustedProxies(trustedProxies)
}

// ClientIP returns the caller address as resolved by the engine. A value
// that does not parse as an IP falls back to the socket peer.
func ClientIP(c *gin.Context) string {
	if addr, err := netip.ParseAddr(c.ClientIP()); err == nil {
		return addr.WithZone("").String()
	}
	return c.RemoteIP()
}

// RequestContext collects what the risk engine needs to know about the caller.
func RequestContext(c *gin.Context, fp *domain.BrowserFingerprint) domain.RequestContext {
	return domain.RequestContext{
		IPAddress:   ClientIP(c),
		UserAgent:   c.Request.UserAgent(),
		SessionID:   c.GetString(CtxSessionID),
		Fingerprint: fp,
	}
}
