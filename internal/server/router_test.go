package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/roamly/roamly/internal/app/domain/user"
	"github.com/roamly/roamly/internal/app/models"
)

// MockTrackingService is a mock implementation of tracking.Service.
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) Track(ctx context.Context, u *models.User) (models.VisitedLocation, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.VisitedLocation), args.Error(1)
}

func (m *MockTrackingService) TrackBatch(ctx context.Context, users []*models.User) ([]models.VisitedLocation, error) {
	args := m.Called(ctx, users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VisitedLocation), args.Error(1)
}

func (m *MockTrackingService) CurrentLocation(ctx context.Context, u *models.User) (models.VisitedLocation, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.VisitedLocation), args.Error(1)
}

func (m *MockTrackingService) NearbyAttractions(ctx context.Context, u *models.User) ([]models.NearbyAttraction, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NearbyAttraction), args.Error(1)
}

// MockTripsService is a mock implementation of trips.Service.
type MockTripsService struct {
	mock.Mock
}

func (m *MockTripsService) TripDeals(ctx context.Context, u *models.User) ([]models.TripDeal, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TripDeal), args.Error(1)
}

func setupTestRouter(t *testing.T) (*MockTrackingService, *MockTripsService, *user.Registry, http.Handler) {
	t.Helper()
	trackingSvc := new(MockTrackingService)
	tripsSvc := new(MockTripsService)
	registry := user.NewRegistry(zap.NewNop())
	router := SetupRouter(Deps{
		Registry: registry,
		Tracking: trackingSvc,
		Trips:    tripsSvc,
	}, zap.NewNop())
	return trackingSvc, tripsSvc, registry, router
}

func TestIndexGreeting(t *testing.T) {
	_, _, _, router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Greetings from Roamly!", w.Body.String())
}

func TestGetLocation(t *testing.T) {
	trackingSvc, _, registry, router := setupTestRouter(t)

	u, err := registry.GetOrCreate("alice", "000", "alice@roamly.com")
	require.NoError(t, err)

	visit := models.NewVisitedLocation(u.ID, models.Location{Latitude: 1.5, Longitude: 2.5}, time.Now().UTC())
	trackingSvc.On("CurrentLocation", mock.Anything, u).Return(visit, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/location?userName=alice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.VisitedLocation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, visit.Location, got.Location)
	assert.Equal(t, u.ID, got.UserID)
}

func TestGetLocationMissingUserName(t *testing.T) {
	_, _, _, router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/location", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLocationUnknownUser(t *testing.T) {
	_, _, _, router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/location?userName=ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNearbyAttractions(t *testing.T) {
	trackingSvc, _, registry, router := setupTestRouter(t)

	u, err := registry.GetOrCreate("alice", "000", "alice@roamly.com")
	require.NoError(t, err)

	nearby := []models.NearbyAttraction{
		{AttractionName: "Alpha", DistanceMiles: 1.2, RewardPoints: 10},
		{AttractionName: "Beta", DistanceMiles: 3.4, RewardPoints: 20},
	}
	trackingSvc.On("NearbyAttractions", mock.Anything, u).Return(nearby, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nearby-attractions?userName=alice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.NearbyAttraction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, nearby, got)
}

func TestGetRewards(t *testing.T) {
	_, _, registry, router := setupTestRouter(t)

	u, err := registry.GetOrCreate("alice", "000", "alice@roamly.com")
	require.NoError(t, err)
	u.AddReward(models.UserReward{Points: 42})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rewards?userName=alice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.UserReward
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].Points)
}

func TestGetTripDeals(t *testing.T) {
	_, tripsSvc, registry, router := setupTestRouter(t)

	u, err := registry.GetOrCreate("alice", "000", "alice@roamly.com")
	require.NoError(t, err)

	deals := []models.TripDeal{{Name: "Sunny Days", Price: 199.99}}
	tripsSvc.On("TripDeals", mock.Anything, u).Return(deals, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trip-deals?userName=alice", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.TripDeal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, deals[0].Name, got[0].Name)
}

func TestGetTripDealsPricerUnavailable(t *testing.T) {
	_, tripsSvc, registry, router := setupTestRouter(t)

	u, err := registry.GetOrCreate("alice", "000", "alice@roamly.com")
	require.NoError(t, err)
	tripsSvc.On("TripDeals", mock.Anything, u).Return(nil, assert.AnError).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trip-deals?userName=alice", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
