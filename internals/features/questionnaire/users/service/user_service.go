package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"relationnel_backend/internals/features/questionnaire/users/model"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore is the narrow persistence surface the service needs; tests
// substitute a stub.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	Create(ctx context.Context, u *model.UserModel) error
}

// =======================
// GORM store
// =======================

type GormUserStore struct {
	DB *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := s.DB.WithContext(ctx).First(&u, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormUserStore) Create(ctx context.Context, u *model.UserModel) error {
	return s.DB.WithContext(ctx).Create(u).Error
}

// =======================
// Service
// =======================

type UserService struct {
	Store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{Store: store}
}

// FindOrCreateByEmail resolves a user by email, creating one lazily on
// first capture. The email uniqueness constraint is the final arbiter of
// the create race: the loser re-reads the winner's row instead of failing.
func (s *UserService) FindOrCreateByEmail(ctx context.Context, email string, name *string) (*model.UserModel, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Store.FindByEmail(ctx, email)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	fresh := &model.UserModel{UserEmail: email, UserName: name}
	if err := s.Store.Create(ctx, fresh); err != nil {
		if isUniqueViolation(err) {
			existing, findErr := s.Store.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return fresh, true, nil
}

// --- PG error mapping ---
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// isUniqueViolation: Postgres unique violation (SQLSTATE 23505), with a
// substring fallback for drivers that don't expose SQLState.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
