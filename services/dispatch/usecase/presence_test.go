package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
)

func TestSetAvailability_GoingReachable(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)

	// First fetch checks suspension, second one backs the pending claim.
	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-1").
		Return(pro, nil).
		Times(2)
	m.gw.EXPECT().
		PublishPresenceEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PresenceEvent) error {
			assert.True(t, event.Online)
			assert.Equal(t, "pro-1", event.ProfessionalID)
			return nil
		})
	m.bookingRepo.EXPECT().
		ClaimOldestPending(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	result, err := uc.SetAvailability(context.Background(), "pro-1", true)
	require.NoError(t, err)
	assert.True(t, result.Online)
	assert.False(t, result.Suspended)
	assert.Nil(t, result.AssignedBooking)
	assert.True(t, m.presence.IsReachable("pro-1"))
}

func TestSetAvailability_GoingReachableClaimsPendingBooking(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-1").
		Return(pro, nil).
		Times(2)
	m.gw.EXPECT().PublishPresenceEvent(gomock.Any(), gomock.Any()).Return(nil)

	claimed := pendingBookingFixture("Bandra", 19.05, 72.82)
	claimed.Status = models.BookingStatusProfessionalAssigned
	claimed.ProfessionalID = "pro-1"
	m.bookingRepo.EXPECT().
		ClaimOldestPending(gomock.Any(), []string{"Bandra"}, pro.Summary()).
		Return(claimed, nil)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SetAvailability(context.Background(), "pro-1", true)
	require.NoError(t, err)
	require.NotNil(t, result.AssignedBooking)
	assert.Equal(t, claimed.ID, result.AssignedBooking.ID)
}

func TestSetAvailability_ClaimFailureKeepsProfessionalReachable(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-1").
		Return(pro, nil).
		Times(2)
	m.gw.EXPECT().PublishPresenceEvent(gomock.Any(), gomock.Any()).Return(nil)
	m.bookingRepo.EXPECT().
		ClaimOldestPending(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	result, err := uc.SetAvailability(context.Background(), "pro-1", true)
	require.NoError(t, err)
	assert.True(t, result.Online)
	assert.True(t, m.presence.IsReachable("pro-1"))
}

func TestSetAvailability_GoingUnreachable(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.presence.MarkReachable("pro-1")

	pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-1").
		Return(pro, nil)
	m.gw.EXPECT().
		PublishPresenceEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PresenceEvent) error {
			assert.False(t, event.Online)
			return nil
		})

	result, err := uc.SetAvailability(context.Background(), "pro-1", false)
	require.NoError(t, err)
	assert.False(t, result.Online)
	assert.False(t, m.presence.IsReachable("pro-1"))
}

func TestSetAvailability_SuspensionOverridesRequest(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	// Suspended mid-session while still in the reachable set.
	m.presence.MarkReachable("pro-1")

	pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
	pro.IsSuspended = true
	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-1").
		Return(pro, nil)
	m.gw.EXPECT().
		PublishPresenceEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PresenceEvent) error {
			assert.Equal(t, "pro-1", event.ProfessionalID)
			assert.False(t, event.Online)
			return nil
		})

	result, err := uc.SetAvailability(context.Background(), "pro-1", true)
	require.NoError(t, err)
	assert.True(t, result.Suspended)
	assert.False(t, result.Online)
	assert.False(t, m.presence.IsReachable("pro-1"))
}

func TestSetAvailability_UnknownProfessional(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.professionalRepo.EXPECT().
		GetProfessional(gomock.Any(), "pro-missing").
		Return(nil, nil)

	result, err := uc.SetAvailability(context.Background(), "pro-missing", true)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRecordLocation(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.professionalRepo.EXPECT().
		UpdateLastKnownLocation(gomock.Any(), "pro-1", 19.0760, 72.8777).
		Return(nil)
	m.geoRepo.EXPECT().
		UpsertPosition(gomock.Any(), "pro-1", 19.0760, 72.8777).
		Return(nil)

	uc.RecordLocation(context.Background(), "pro-1", 19.0760, 72.8777)

	loc, ok := m.locations.Lookup("pro-1")
	require.True(t, ok)
	assert.Equal(t, 19.0760, loc.Latitude)
}

func TestRecordLocation_MirrorFailuresAreNonFatal(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.professionalRepo.EXPECT().
		UpdateLastKnownLocation(gomock.Any(), "pro-1", 19.0, 72.8).
		Return(errors.New("db down"))
	m.geoRepo.EXPECT().
		UpsertPosition(gomock.Any(), "pro-1", 19.0, 72.8).
		Return(errors.New("redis down"))

	uc.RecordLocation(context.Background(), "pro-1", 19.0, 72.8)

	// The live store is still updated.
	_, ok := m.locations.Lookup("pro-1")
	assert.True(t, ok)
}

func TestDisconnect(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.presence.MarkReachable("pro-1")
	m.locations.Record("pro-1", 19.0, 72.8)

	m.geoRepo.EXPECT().RemovePosition(gomock.Any(), "pro-1").Return(nil)
	m.gw.EXPECT().
		PublishPresenceEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.PresenceEvent) error {
			assert.False(t, event.Online)
			return nil
		})

	uc.Disconnect(context.Background(), "pro-1")

	assert.False(t, m.presence.IsReachable("pro-1"))

	// Last reported position survives the disconnect.
	_, ok := m.locations.Lookup("pro-1")
	assert.True(t, ok)
}

func TestStats(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.presence.MarkReachable("pro-b")
	m.presence.MarkReachable("pro-a")
	m.locations.Record("pro-a", 19.0, 72.8)

	stats := uc.Stats()
	assert.Equal(t, 2, stats.ReachableProfessionals)
	assert.Equal(t, 1, stats.TrackedLocations)
	assert.Equal(t, []string{"pro-a", "pro-b"}, stats.ReachableIDs)
}

func TestNearbyProfessionals_DefaultRadius(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	m.geoRepo.EXPECT().
		Nearby(gomock.Any(), 19.0, 72.8, 5.0).
		Return([]*models.NearbyProfessional{{ID: "pro-1"}}, nil)

	got, err := uc.NearbyProfessionals(context.Background(), 19.0, 72.8, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
