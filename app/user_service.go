package app

import (
	"context"
	"log"
	"strings"
	"time"

	"reeladmin/internal/errors"
	"reeladmin/models"
	"reeladmin/ports"
)

// UserService provides admin operations over player accounts.
type UserService struct {
	users ports.UserRepository
	zones ports.ZoneRepository
}

// UserUpdate carries the admin-editable account fields.
type UserUpdate struct {
	Nickname           *string `json:"nickname,omitempty"`
	Coins              *int64  `json:"coins,omitempty"`
	PremiumCurrency    *int64  `json:"premium_currency,omitempty"`
	FishPondCapacity   *int    `json:"fish_pond_capacity,omitempty"`
	FishingZoneID      *int64  `json:"fishing_zone_id,omitempty"`
	AutoFishingEnabled *bool   `json:"auto_fishing_enabled,omitempty"`
}

// NewUserService creates a user service
func NewUserService(users ports.UserRepository, zones ports.ZoneRepository) *UserService {
	return &UserService{users: users, zones: zones}
}

// ListUsers returns one page of the admin user listing. Search matches
// user IDs and nicknames.
func (s *UserService) ListUsers(ctx context.Context, page, perPage int, search string) (*models.UserPage, error) {
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return s.users.ListUsers(ctx, page, perPage, strings.TrimSpace(search))
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetUser(ctx, userID)
}

// CreateUser registers a player account from the admin panel. New
// accounts start in the builtin novice zone unless told otherwise.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	if strings.TrimSpace(user.UserID) == "" {
		return FieldErrors{"user_id": "user id is required"}
	}
	if user.Coins < 0 {
		return FieldErrors{"coins": "coins cannot be negative"}
	}
	if user.FishPondCapacity < 1 {
		user.FishPondCapacity = 50
	}
	if user.FishingZoneID == 0 {
		user.FishingZoneID = 1
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return err
	}
	log.Printf("[UserService] Created user %s", user.UserID)
	return nil
}

// UpdateUser applies the provided fields to an account. The zone
// change goes through the same availability checks as the game API.
func (s *UserService) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fieldErrs := FieldErrors{}
	if update.Coins != nil {
		if *update.Coins < 0 {
			fieldErrs["coins"] = "coins cannot be negative"
		} else {
			user.Coins = *update.Coins
		}
	}
	if update.PremiumCurrency != nil {
		if *update.PremiumCurrency < 0 {
			fieldErrs["premium_currency"] = "premium currency cannot be negative"
		} else {
			user.PremiumCurrency = *update.PremiumCurrency
		}
	}
	if update.FishPondCapacity != nil {
		if *update.FishPondCapacity < 1 {
			fieldErrs["fish_pond_capacity"] = "fish pond capacity must be positive"
		} else {
			user.FishPondCapacity = *update.FishPondCapacity
		}
	}
	if update.Nickname != nil {
		user.Nickname = update.Nickname
	}
	if update.AutoFishingEnabled != nil {
		user.AutoFishingEnabled = *update.AutoFishingEnabled
	}
	if update.FishingZoneID != nil {
		if _, err := s.zones.GetZone(ctx, *update.FishingZoneID); err != nil {
			if errors.IsNotFound(err) {
				fieldErrs["fishing_zone_id"] = "zone does not exist"
			} else {
				return nil, err
			}
		} else {
			user.FishingZoneID = *update.FishingZoneID
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return err
	}
	log.Printf("[UserService] Deleted user %s", userID)
	return nil
}

// SwitchZone moves a player into a zone, enforcing activity and
// availability windows. Used by the game API.
func (s *UserService) SwitchZone(ctx context.Context, userID string, zoneID int64, now time.Time) error {
	z, err := s.zones.GetZone(ctx, zoneID)
	if err != nil {
		return err
	}
	if !z.AvailableAt(now) {
		return errors.InvalidInput("zone is not currently available")
	}
	return s.users.SetUserZone(ctx, userID, zoneID)
}
