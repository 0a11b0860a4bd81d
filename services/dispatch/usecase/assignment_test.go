package usecase

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eshaatri/homewash-dispatch/internal/pkg/models"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/mocks"
	"github.com/eshaatri/homewash-dispatch/services/dispatch/tracker"
)

type dispatchMocks struct {
	bookingRepo      *mocks.MockBookingRepo
	professionalRepo *mocks.MockProfessionalRepo
	geoRepo          *mocks.MockGeoRepo
	gw               *mocks.MockDispatchGW
	presence         *tracker.Presence
	locations        *tracker.Locations
}

func setupDispatchUCTest(t *testing.T) (*DispatchUC, *dispatchMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &dispatchMocks{
		bookingRepo:      mocks.NewMockBookingRepo(ctrl),
		professionalRepo: mocks.NewMockProfessionalRepo(ctrl),
		geoRepo:          mocks.NewMockGeoRepo(ctrl),
		gw:               mocks.NewMockDispatchGW(ctrl),
		presence:         tracker.NewPresence(),
		locations:        tracker.NewLocations(),
	}

	cfg := &models.Config{
		Dispatch: models.DispatchConfig{NearbyRadiusKm: 5},
	}

	uc := NewDispatchUC(cfg, m.presence, m.locations,
		m.bookingRepo, m.professionalRepo, m.geoRepo, m.gw)

	return uc, m, ctrl
}

func professionalFixture(id, area string, lat, lng float64) *models.Professional {
	return &models.Professional{
		ID:            id,
		FullName:      "Pro " + id,
		Role:          models.RoleProfessional,
		ServiceArea:   area,
		LastLatitude:  sql.NullFloat64{Float64: lat, Valid: true},
		LastLongitude: sql.NullFloat64{Float64: lng, Valid: true},
	}
}

func pendingBookingFixture(area string, lat, lng float64) *models.Booking {
	return &models.Booking{
		ID:          uuid.New(),
		CustomerID:  "cust-1",
		ServiceArea: area,
		Status:      models.BookingStatusPending,
		CustomerLocation: &models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Now(),
		},
	}
}

func TestAssignNewBooking_NearestWins(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	// Customer in Bandra; pro-far is across town, pro-near a street away.
	booking := pendingBookingFixture("Bandra", 19.0596, 72.8295)

	m.presence.MarkReachable("pro-far")
	m.presence.MarkReachable("pro-near")

	far := professionalFixture("pro-far", "Bandra", 19.1197, 72.9051)
	near := professionalFixture("pro-near", "Bandra", 19.0607, 72.8300)

	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), []string{"pro-far", "pro-near"}).
		Return([]*models.Professional{far, near}, nil)

	assigned := *booking
	assigned.Status = models.BookingStatusProfessionalAssigned
	assigned.ProfessionalID = near.ID
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), near.Summary()).
		Return(&assigned, nil)

	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pro-near", got.ProfessionalID)
}

func TestAssignNewBooking_LiveLocationBeatsLastKnown(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Bandra", 19.0596, 72.8295)

	m.presence.MarkReachable("pro-a")
	m.presence.MarkReachable("pro-b")

	// pro-a's stored coordinate is closest, but a fresher live report puts it
	// far away; pro-b must win.
	proA := professionalFixture("pro-a", "Bandra", 19.0596, 72.8295)
	proB := professionalFixture("pro-b", "Bandra", 19.0650, 72.8330)
	m.locations.Record("pro-a", 19.2000, 72.9700)

	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), gomock.Any()).
		Return([]*models.Professional{proA, proB}, nil)

	assigned := *booking
	assigned.Status = models.BookingStatusProfessionalAssigned
	assigned.ProfessionalID = proB.ID
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), proB.Summary()).
		Return(&assigned, nil)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pro-b", got.ProfessionalID)
}

func TestAssignNewBooking_AreaListAndIDMatch(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Andheri", 19.1197, 72.8468)

	m.presence.MarkReachable("pro-list")

	// Area appears inside a comma-separated list rather than verbatim.
	pro := professionalFixture("pro-list", "Bandra, Andheri", 19.1200, 72.8470)
	pro.AreaIDs = pq.StringArray{"area-9"}

	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), gomock.Any()).
		Return([]*models.Professional{pro}, nil)

	assigned := *booking
	assigned.Status = models.BookingStatusProfessionalAssigned
	assigned.ProfessionalID = pro.ID
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), pro.Summary()).
		Return(&assigned, nil)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestAssignNewBooking_NoAssignmentCases(t *testing.T) {
	t.Run("empty service area", func(t *testing.T) {
		uc, _, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		booking := pendingBookingFixture("", 19.0, 72.8)
		got, err := uc.AssignNewBooking(context.Background(), booking)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no reachable professionals", func(t *testing.T) {
		uc, _, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		booking := pendingBookingFixture("Bandra", 19.0, 72.8)
		got, err := uc.AssignNewBooking(context.Background(), booking)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("no area match", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		booking := pendingBookingFixture("Bandra", 19.0, 72.8)
		m.presence.MarkReachable("pro-1")

		m.professionalRepo.EXPECT().
			GetActiveProfessionals(gomock.Any(), gomock.Any()).
			Return([]*models.Professional{professionalFixture("pro-1", "Powai", 19.1, 72.9)}, nil)

		got, err := uc.AssignNewBooking(context.Background(), booking)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("candidate without any position is skipped", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		booking := pendingBookingFixture("Bandra", 19.0, 72.8)
		m.presence.MarkReachable("pro-1")

		pro := &models.Professional{ID: "pro-1", ServiceArea: "Bandra"}
		m.professionalRepo.EXPECT().
			GetActiveProfessionals(gomock.Any(), gomock.Any()).
			Return([]*models.Professional{pro}, nil)

		got, err := uc.AssignNewBooking(context.Background(), booking)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestAssignNewBooking_PositionlessBookingPicksFirstCandidate(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Bandra", 0, 0)
	booking.CustomerLocation = nil

	m.presence.MarkReachable("pro-b")
	m.presence.MarkReachable("pro-a")

	proA := professionalFixture("pro-a", "Bandra", 19.0, 72.8)
	proB := professionalFixture("pro-b", "Bandra", 19.1, 72.9)

	// All distances are zero without a customer position, so the first
	// candidate in snapshot order sticks.
	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), []string{"pro-a", "pro-b"}).
		Return([]*models.Professional{proA, proB}, nil)

	assigned := *booking
	assigned.Status = models.BookingStatusProfessionalAssigned
	assigned.ProfessionalID = proA.ID
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), proA.Summary()).
		Return(&assigned, nil)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pro-a", got.ProfessionalID)
}

func TestAssignNewBooking_SelectionIndependentOfQueryRowOrder(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Bandra", 0, 0)
	booking.CustomerLocation = nil

	m.presence.MarkReachable("pro-b")
	m.presence.MarkReachable("pro-a")

	proA := professionalFixture("pro-a", "Bandra", 19.0, 72.8)
	proB := professionalFixture("pro-b", "Bandra", 19.1, 72.9)

	// Rows come back in whatever order the database produced them; snapshot
	// order must still decide the tie.
	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), []string{"pro-a", "pro-b"}).
		Return([]*models.Professional{proB, proA}, nil)

	assigned := *booking
	assigned.Status = models.BookingStatusProfessionalAssigned
	assigned.ProfessionalID = proA.ID
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), proA.Summary()).
		Return(&assigned, nil)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pro-a", got.ProfessionalID)
}

func TestAssignNewBooking_LostRaceReturnsNil(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Bandra", 19.0596, 72.8295)
	m.presence.MarkReachable("pro-1")

	pro := professionalFixture("pro-1", "Bandra", 19.0607, 72.8300)
	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), gomock.Any()).
		Return([]*models.Professional{pro}, nil)

	// Conditional update matched no row: someone else assigned it first.
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), pro.Summary()).
		Return(nil, nil)

	got, err := uc.AssignNewBooking(context.Background(), booking)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAssignNewBooking_ExactlyOnceUnderConcurrency(t *testing.T) {
	uc, m, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	booking := pendingBookingFixture("Bandra", 19.0596, 72.8295)
	m.presence.MarkReachable("pro-1")
	pro := professionalFixture("pro-1", "Bandra", 19.0607, 72.8300)

	const workers = 16
	m.professionalRepo.EXPECT().
		GetActiveProfessionals(gomock.Any(), gomock.Any()).
		Return([]*models.Professional{pro}, nil).
		Times(workers)

	// The storage CAS lets exactly one caller through, as the conditional
	// update does in Postgres.
	var claimed int32
	m.bookingRepo.EXPECT().
		AssignIfUnassigned(gomock.Any(), booking.ID.String(), gomock.Any()).
		DoAndReturn(func(context.Context, string, *models.ProfessionalSummary) (*models.Booking, error) {
			if atomic.CompareAndSwapInt32(&claimed, 0, 1) {
				assigned := *booking
				assigned.Status = models.BookingStatusProfessionalAssigned
				assigned.ProfessionalID = pro.ID
				return &assigned, nil
			}
			return nil, nil
		}).
		Times(workers)
	m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

	var assignedCount int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := uc.AssignNewBooking(context.Background(), booking)
			assert.NoError(t, err)
			if got != nil {
				atomic.AddInt32(&assignedCount, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), assignedCount)
}

func TestAssignPendingToProfessional(t *testing.T) {
	t.Run("claims oldest pending booking", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		pro := professionalFixture("pro-1", "Bandra, Andheri", 19.0, 72.8)
		m.professionalRepo.EXPECT().
			GetProfessional(gomock.Any(), "pro-1").
			Return(pro, nil)

		claimed := pendingBookingFixture("Andheri", 19.1, 72.85)
		claimed.Status = models.BookingStatusProfessionalAssigned
		claimed.ProfessionalID = pro.ID
		m.bookingRepo.EXPECT().
			ClaimOldestPending(gomock.Any(), []string{"Bandra", "Andheri"}, pro.Summary()).
			Return(claimed, nil)
		m.gw.EXPECT().PublishBookingAssigned(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.AssignPendingToProfessional(context.Background(), "pro-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "pro-1", got.ProfessionalID)
	})

	t.Run("unknown professional", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		m.professionalRepo.EXPECT().
			GetProfessional(gomock.Any(), "pro-missing").
			Return(nil, nil)

		got, err := uc.AssignPendingToProfessional(context.Background(), "pro-missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("suspended professional claims nothing", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
		pro.IsSuspended = true
		m.professionalRepo.EXPECT().
			GetProfessional(gomock.Any(), "pro-1").
			Return(pro, nil)

		got, err := uc.AssignPendingToProfessional(context.Background(), "pro-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("professional without areas", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		pro := &models.Professional{ID: "pro-1", Role: models.RoleProfessional}
		m.professionalRepo.EXPECT().
			GetProfessional(gomock.Any(), "pro-1").
			Return(pro, nil)

		got, err := uc.AssignPendingToProfessional(context.Background(), "pro-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("nothing pending", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		pro := professionalFixture("pro-1", "Bandra", 19.0, 72.8)
		m.professionalRepo.EXPECT().
			GetProfessional(gomock.Any(), "pro-1").
			Return(pro, nil)
		m.bookingRepo.EXPECT().
			ClaimOldestPending(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		got, err := uc.AssignPendingToProfessional(context.Background(), "pro-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("stays pending when nobody is reachable", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		booking := &models.Booking{CustomerID: "cust-1", ServiceArea: "Bandra"}
		m.bookingRepo.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil)

		got, err := uc.CreateBooking(context.Background(), booking)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.BookingStatusPending, got.Status)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		uc, m, ctrl := setupDispatchUCTest(t)
		defer ctrl.Finish()

		m.bookingRepo.EXPECT().
			CreateBooking(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		got, err := uc.CreateBooking(context.Background(), &models.Booking{CustomerID: "c", ServiceArea: "Bandra"})
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestUpdateBookingStatus_RejectsUnknownStatus(t *testing.T) {
	uc, _, ctrl := setupDispatchUCTest(t)
	defer ctrl.Finish()

	err := uc.UpdateBookingStatus(context.Background(), uuid.NewString(), "TELEPORTED")
	assert.Error(t, err)
}
