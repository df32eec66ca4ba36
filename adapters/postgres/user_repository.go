package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"reeladmin/models"
	"reeladmin/ports"

	apperrors "reeladmin/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

const userColumns = `
	user_id, nickname, coins, premium_currency, total_fishing_count,
	total_weight_caught, total_coins_earned, consecutive_login_days,
	fish_pond_capacity, fishing_zone_id, auto_fishing_enabled,
	created_at, last_login_time
`

func (r *UserRepositoryImpl) ListUsers(ctx context.Context, page, perPage int, search string) (*models.UserPage, error) {
	where := ``
	args := []interface{}{}
	if search != "" {
		where = `WHERE user_id ILIKE $1 OR nickname ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users `+where, args...); err != nil {
		return nil, err
	}

	pagination := models.NewPagination(page, perPage, total)
	args = append(args, pagination.PerPage, pagination.Offset())
	limitPos := len(args) - 1 // 1-based placeholder indices

	var users []models.User
	query := `SELECT ` + userColumns + ` FROM users ` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}

	return &models.UserPage{Users: users, Pagination: pagination}, nil
}

func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("user")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (user_id, nickname, coins, premium_currency, fish_pond_capacity,
		                   fishing_zone_id, auto_fishing_enabled, created_at)
		VALUES (:user_id, :nickname, :coins, :premium_currency, :fish_pond_capacity,
		        :fishing_zone_id, :auto_fishing_enabled, NOW())
	`, user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return apperrors.Conflict("a user with this id already exists")
		}
	}
	return err
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, user *models.User) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE users
		SET nickname = :nickname, coins = :coins, premium_currency = :premium_currency,
		    fish_pond_capacity = :fish_pond_capacity, fishing_zone_id = :fishing_zone_id,
		    auto_fishing_enabled = :auto_fishing_enabled
		WHERE user_id = :user_id
	`, user)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user")
}

func (r *UserRepositoryImpl) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user")
}

func (r *UserRepositoryImpl) SetUserZone(ctx context.Context, userID string, zoneID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET fishing_zone_id = $2 WHERE user_id = $1
	`, userID, zoneID)
	if err != nil {
		return err
	}
	return requireRowAffected(res, "user")
}
