package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports/mocks"
	"saldo-ledger/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type geoTestSetup struct {
	provider *mocks.MockGeoProvider
	shared   *mocks.MockGeoCache
	svc      *GeolocationServiceImpl
}

func newGeoTestSetup(t *testing.T) *geoTestSetup {
	ctrl := gomock.NewController(t)
	s := &geoTestSetup{
		provider: mocks.NewMockGeoProvider(ctrl),
		shared:   mocks.NewMockGeoCache(ctrl),
	}
	s.svc = NewGeolocationService(s.provider, s.shared, 100, time.Hour, metrics.New(), newTestLogger())
	t.Cleanup(s.svc.Stop)
	return s
}

func TestIsPublicIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"", false},
		{"unknown", false},
		{"not-an-ip", false},
		{"127.0.0.1", false},
		{"10.1.2.3", false},
		{"192.168.0.10", false},
		{"172.16.5.4", false},
		{"169.254.1.1", false},
		{"0.0.0.0", false},
		{"::1", false},
		{"fe80::1", false},
		{"fd00::1", false},
		{"::ffff:10.0.0.1", false},
		{"8.8.8.8", true},
		{"36.84.1.2", true},
		{"2001:4860:4860::8888", true},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPublicIP(tt.ip))
		})
	}
}

func TestGeolocationService_Resolve_PrivateSkipsLookup(t *testing.T) {
	s := newGeoTestSetup(t)

	data, err := s.svc.Resolve(context.Background(), "192.168.1.20")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestGeolocationService_Resolve_ProviderThenLocalCache(t *testing.T) {
	s := newGeoTestSetup(t)
	ctx := context.Background()
	geo := &domain.GeoData{IP: "36.84.1.2", City: "Jakarta", Latitude: -6.2, Longitude: 106.8}

	s.shared.EXPECT().Get(gomock.Any(), "36.84.1.2").Return(nil, nil)
	s.provider.EXPECT().Lookup(gomock.Any(), "36.84.1.2").Return(geo, nil)
	s.shared.EXPECT().Set(gomock.Any(), "36.84.1.2", geo, time.Hour).Return(nil)

	got, err := s.svc.Resolve(ctx, "36.84.1.2")
	require.NoError(t, err)
	assert.Equal(t, geo, got)

	// Second call is served from the in-process cache.
	got, err = s.svc.Resolve(ctx, "36.84.1.2")
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", got.City)
}

func TestGeolocationService_Resolve_SharedCacheHit(t *testing.T) {
	s := newGeoTestSetup(t)
	geo := &domain.GeoData{IP: "8.8.8.8", City: "Mountain View"}

	s.shared.EXPECT().Get(gomock.Any(), "8.8.8.8").Return(geo, nil)

	got, err := s.svc.Resolve(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, geo, got)
}

func TestGeolocationService_Resolve_SharedCacheDown(t *testing.T) {
	s := newGeoTestSetup(t)
	geo := &domain.GeoData{IP: "8.8.8.8", City: "Mountain View"}

	s.shared.EXPECT().Get(gomock.Any(), "8.8.8.8").Return(nil, errors.New("redis down"))
	s.provider.EXPECT().Lookup(gomock.Any(), "8.8.8.8").Return(geo, nil)
	s.shared.EXPECT().Set(gomock.Any(), "8.8.8.8", geo, time.Hour).Return(errors.New("redis down"))

	got, err := s.svc.Resolve(context.Background(), "8.8.8.8")
	require.NoError(t, err)
	assert.Equal(t, geo, got)
}

func TestGeolocationService_Resolve_ProviderError(t *testing.T) {
	s := newGeoTestSetup(t)

	s.shared.EXPECT().Get(gomock.Any(), "8.8.8.8").Return(nil, nil)
	s.provider.EXPECT().Lookup(gomock.Any(), "8.8.8.8").Return(nil, errors.New("timeout"))

	got, err := s.svc.Resolve(context.Background(), "8.8.8.8")
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestGeolocationService_Resolve_NoSharedCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockGeoProvider(ctrl)
	svc := NewGeolocationService(provider, nil, 0, time.Hour, nil, newTestLogger())
	defer svc.Stop()

	provider.EXPECT().Lookup(gomock.Any(), "8.8.4.4").Return(&domain.GeoData{City: "X"}, nil)

	got, err := svc.Resolve(context.Background(), "8.8.4.4")
	require.NoError(t, err)
	assert.Equal(t, "X", got.City)
}
