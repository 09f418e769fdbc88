package service

import (
	"context"
	"net/netip"
	"strings"
	"time"

	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/metrics"

	"github.com/karlseguin/ccache/v2"
	"github.com/rs/zerolog"
)

// Geo lookup sources, as reported to metrics.
const (
	geoSourceLocal    = "local"
	geoSourceShared   = "shared"
	geoSourceProvider = "provider"
	geoSourceSkipped  = "skipped"
	geoSourceError    = "error"
)

// GeolocationServiceImpl implements ports.GeoResolver with a two-tier cache:
// an in-process LRU in front of the shared Redis cache, then the provider.
type GeolocationServiceImpl struct {
	local    *ccache.Cache
	shared   ports.GeoCache
	provider ports.GeoProvider
	ttl      time.Duration
	metrics  *metrics.Recorder
	log      zerolog.Logger
}

// NewGeolocationService creates a resolver. shared may be nil.
func NewGeolocationService(
	provider ports.GeoProvider,
	shared ports.GeoCache,
	localSize int64,
	ttl time.Duration,
	recorder *metrics.Recorder,
	log zerolog.Logger,
) *GeolocationServiceImpl {
	if localSize <= 0 {
		localSize = 10000
	}
	return &GeolocationServiceImpl{
		local:    ccache.New(ccache.Configure().MaxSize(localSize).ItemsToPrune(uint32(localSize/20 + 1))),
		shared:   shared,
		provider: provider,
		ttl:      ttl,
		metrics:  recorder,
		log:      log,
	}
}

// Resolve returns nil, nil for addresses that cannot be located.
func (s *GeolocationServiceImpl) Resolve(ctx context.Context, ip string) (*domain.GeoData, error) {
	if !IsPublicIP(ip) {
		s.metrics.GeoLookup(geoSourceSkipped)
		return nil, nil
	}

	if item := s.local.Get(ip); item != nil && !item.Expired() {
		if data, ok := item.Value().(*domain.GeoData); ok {
			s.metrics.GeoLookup(geoSourceLocal)
			return data, nil
		}
	}

	if s.shared != nil {
		data, err := s.shared.Get(ctx, ip)
		if err != nil {
			s.log.Warn().Err(err).Str("ip", ip).Msg("Geo cache read failed, querying provider")
		} else if data != nil {
			s.local.Set(ip, data, s.ttl)
			s.metrics.GeoLookup(geoSourceShared)
			return data, nil
		}
	}

	data, err := s.provider.Lookup(ctx, ip)
	if err != nil {
		s.metrics.GeoLookup(geoSourceError)
		return nil, err
	}

	s.local.Set(ip, data, s.ttl)
	if s.shared != nil {
		if err := s.shared.Set(ctx, ip, data, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("ip", ip).Msg("Geo cache write failed")
		}
	}
	s.metrics.GeoLookup(geoSourceProvider)
	return data, nil
}

// Stop releases the local cache's background worker.
func (s *GeolocationServiceImpl) Stop() {
	s.local.Stop()
}

// IsPublicIP reports whether ip is a routable address worth looking up.
func IsPublicIP(ip string) bool {
	ip = strings.TrimSpace(ip)
	if ip == "" || strings.EqualFold(ip, "unknown") {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return !(addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsMulticast() || addr.IsUnspecified())
}
