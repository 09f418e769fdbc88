package service

import (
	"fmt"
	"math"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
)

const earthRadiusKm = 6371.0

// RiskRules holds the pure scoring functions applied to gathered signals.
// None of them perform I/O.
type RiskRules struct {
	cfg            config.RiskConfig
	vpnBlockAmount decimal.Decimal
	fpHighAmount   decimal.Decimal
	amountHigh     decimal.Decimal
	amountMedium   decimal.Decimal
	amountNotice   decimal.Decimal
}

// NewRiskRules builds the rule set from configuration.
func NewRiskRules(cfg config.RiskConfig) RiskRules {
	return RiskRules{
		cfg:            cfg,
		vpnBlockAmount: decimal.NewFromInt(cfg.VPNBlockAmount),
		fpHighAmount:   decimal.NewFromInt(cfg.FingerprintHighAmount),
		amountHigh:     decimal.NewFromInt(cfg.AmountHigh),
		amountMedium:   decimal.NewFromInt(cfg.AmountMedium),
		amountNotice:   decimal.NewFromInt(cfg.AmountNotice),
	}
}

// RateLimit blocks once the user has reached the allowed number of
// transactions in the trailing window.
func (r RiskRules) RateLimit(recent int) domain.RiskDelta {
	if recent < r.cfg.RateLimitMax {
		return domain.RiskDelta{}
	}
	return domain.RiskDelta{
		Level:  domain.RiskLevelHigh,
		Delay:  r.cfg.RateLimitPenalty,
		Block:  true,
		Err:    apperror.ErrTooManyTransactions(),
		Reason: fmt.Sprintf("%d transactions in the last %s", recent, r.cfg.RateLimitWindow),
	}
}

// Geo flags VPN and hosting-provider addresses; large amounts from them are refused.
func (r RiskRules) Geo(geo *domain.GeoData, amount decimal.Decimal) domain.RiskDelta {
	if geo == nil || !geo.IsVPNProxy {
		return domain.RiskDelta{}
	}
	if amount.GreaterThanOrEqual(r.vpnBlockAmount) {
		return domain.RiskDelta{
			Level:  domain.RiskLevelHigh,
			Block:  true,
			Err:    apperror.ErrVPNDetected(),
			Reason: "vpn or proxy with large amount",
		}
	}
	return domain.RiskDelta{
		Level:  domain.RiskLevelHigh,
		Delay:  r.cfg.VPNDelay,
		Reason: "vpn or proxy",
	}
}

// Travel compares the current location with the last successful one.
// A nil last or a current location without coordinates yields no signal.
func (r RiskRules) Travel(last *domain.SecuritySnapshot, current *domain.GeoData, now time.Time) domain.RiskDelta {
	if last == nil || !current.HasCoordinates() || (last.Latitude == 0 && last.Longitude == 0) {
		return domain.RiskDelta{}
	}

	distance := HaversineKm(last.Latitude, last.Longitude, current.Latitude, current.Longitude)
	if distance < r.cfg.TravelMinDistanceKm {
		return domain.RiskDelta{}
	}

	elapsed := now.Sub(last.CreatedAt).Hours()
	if elapsed <= 0 {
		return r.travelBlock(fmt.Sprintf("%.0f km with no elapsed time", distance))
	}

	speed := distance / elapsed
	switch {
	case speed > r.cfg.TravelBlockSpeedKmh:
		return r.travelBlock(fmt.Sprintf("%.0f km/h between locations", speed))
	case speed >= r.cfg.TravelHighSpeedKmh:
		return domain.RiskDelta{
			Level:  domain.RiskLevelHigh,
			Delay:  r.cfg.TravelHighDelay,
			Reason: fmt.Sprintf("fast travel %.0f km/h", speed),
		}
	case speed > r.cfg.TravelMediumSpeedKmh:
		return domain.RiskDelta{
			Level:  domain.RiskLevelMedium,
			Delay:  r.cfg.TravelMediumDelay,
			Reason: fmt.Sprintf("unusual travel %.0f km/h", speed),
		}
	}
	return domain.RiskDelta{}
}

func (r RiskRules) travelBlock(reason string) domain.RiskDelta {
	return domain.RiskDelta{
		Level:  domain.RiskLevelHigh,
		Delay:  r.cfg.TravelBlockDelay,
		Block:  true,
		Err:    apperror.ErrImpossibleTravel(),
		Reason: "impossible travel: " + reason,
	}
}

// Fingerprint penalizes a device not seen in the user's recent history.
func (r RiskRules) Fingerprint(novel bool, amount decimal.Decimal) domain.RiskDelta {
	if !novel {
		return domain.RiskDelta{}
	}
	if amount.GreaterThanOrEqual(r.fpHighAmount) {
		return domain.RiskDelta{
			Level:  domain.RiskLevelHigh,
			Delay:  r.cfg.FingerprintHighDelay,
			Reason: "new device with large amount",
		}
	}
	return domain.RiskDelta{
		Level:  domain.RiskLevelMedium,
		Delay:  r.cfg.FingerprintDelay,
		Reason: "new device",
	}
}

// MultiIP scores the number of other addresses used in the trailing window.
func (r RiskRules) MultiIP(otherIPs int) domain.RiskDelta {
	switch {
	case otherIPs >= 2:
		return domain.RiskDelta{
			Level:  domain.RiskLevelHigh,
			Delay:  r.cfg.MultiIPHighDelay,
			Reason: fmt.Sprintf("%d other ip addresses", otherIPs),
		}
	case otherIPs == 1:
		return domain.RiskDelta{
			Level:  domain.RiskLevelMedium,
			Delay:  r.cfg.MultiIPMediumDelay,
			Reason: "1 other ip address",
		}
	}
	return domain.RiskDelta{}
}

// Amount applies the amount tiers.
func (r RiskRules) Amount(amount decimal.Decimal) domain.RiskDelta {
	switch {
	case amount.GreaterThanOrEqual(r.amountHigh):
		return domain.RiskDelta{Level: domain.RiskLevelHigh, Delay: r.cfg.AmountHighDelay, Reason: "very large amount"}
	case amount.GreaterThanOrEqual(r.amountMedium):
		return domain.RiskDelta{Level: domain.RiskLevelMedium, Delay: r.cfg.AmountMediumDelay, Reason: "large amount"}
	case amount.GreaterThanOrEqual(r.amountNotice):
		return domain.RiskDelta{Level: domain.RiskLevelLow, Delay: r.cfg.AmountNoticeDelay, Reason: "notable amount"}
	}
	return domain.RiskDelta{}
}

// HaversineKm returns the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
