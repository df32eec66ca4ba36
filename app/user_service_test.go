package app

import (
	"context"
	"testing"
	"time"

	"reeladmin/internal/errors"
	"reeladmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService() (*UserService, *fakeUserRepo, *fakeZoneRepo) {
	users := newFakeUserRepo()
	zones := newFakeZoneRepo()
	return NewUserService(users, zones), users, zones
}

func TestCreateUserDefaults(t *testing.T) {
	svc, users, _ := newUserService()

	u := &models.User{UserID: "u-100"}
	require.NoError(t, svc.CreateUser(context.Background(), u))

	stored := users.users["u-100"]
	assert.Equal(t, 50, stored.FishPondCapacity)
	assert.Equal(t, int64(1), stored.FishingZoneID)
}

func TestCreateUserKeepsPondAndAutoFishingSettings(t *testing.T) {
	svc, users, _ := newUserService()

	u := &models.User{UserID: "u-101", FishPondCapacity: 120, AutoFishingEnabled: true}
	require.NoError(t, svc.CreateUser(context.Background(), u))

	stored := users.users["u-101"]
	assert.Equal(t, 120, stored.FishPondCapacity)
	assert.True(t, stored.AutoFishingEnabled)
}

func TestCreateUserRequiresID(t *testing.T) {
	svc, _, _ := newUserService()

	err := svc.CreateUser(context.Background(), &models.User{UserID: " "})
	require.Error(t, err)
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "user_id")
}

func TestUpdateUserRejectsNegativeBalances(t *testing.T) {
	svc, users, _ := newUserService()
	users.users["u-1"] = models.User{UserID: "u-1", Coins: 500, FishPondCapacity: 50}

	coins := int64(-10)
	_, err := svc.UpdateUser(context.Background(), "u-1", UserUpdate{Coins: &coins})
	require.Error(t, err)
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "coins")

	// Unchanged on rejected update.
	assert.Equal(t, int64(500), users.users["u-1"].Coins)
}

func TestUpdateUserChecksZoneExists(t *testing.T) {
	svc, users, _ := newUserService()
	users.users["u-1"] = models.User{UserID: "u-1", FishingZoneID: 1, FishPondCapacity: 50}

	zoneID := int64(42)
	_, err := svc.UpdateUser(context.Background(), "u-1", UserUpdate{FishingZoneID: &zoneID})
	require.Error(t, err)
	fieldErrs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fieldErrs, "fishing_zone_id")
}

func TestSwitchZoneAvailability(t *testing.T) {
	svc, users, zones := newUserService()
	users.users["u-1"] = models.User{UserID: "u-1", FishingZoneID: 1}

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(24 * time.Hour)
	zones.zones[2] = models.FishingZone{ID: 2, Name: "Deep Sea Canyon", IsActive: true}
	zones.zones[3] = models.FishingZone{ID: 3, Name: "Event Reef", IsActive: true, AvailableFrom: &later}
	zones.zones[4] = models.FishingZone{ID: 4, Name: "Closed Cove", IsActive: false}

	require.NoError(t, svc.SwitchZone(context.Background(), "u-1", 2, now))
	assert.Equal(t, int64(2), users.users["u-1"].FishingZoneID)

	err := svc.SwitchZone(context.Background(), "u-1", 3, now)
	require.Error(t, err)

	err = svc.SwitchZone(context.Background(), "u-1", 4, now)
	require.Error(t, err)

	err = svc.SwitchZone(context.Background(), "u-1", 99, now)
	require.True(t, errors.IsNotFound(err))
}
