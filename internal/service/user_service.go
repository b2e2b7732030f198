package service

import (
	"context"
	"errors"
	"strings"

	"Loyalty/internal/auth"
	dom "Loyalty/internal/domain"
	"Loyalty/internal/repo"

	"github.com/jackc/pgx/v5"
)

var (
	ErrEmailTaken    = errors.New("email taken")
	ErrUserNotFound  = errors.New("user does not exist")
	ErrWrongPassword = errors.New("wrong password")
	ErrNotFound      = errors.New("not found")
)

// UserService handles signup, login, profile and points logic.
type UserService struct {
	repo   repo.UserRepo
	hasher *auth.Hasher
}

// NewUserService returns a new UserService.
func NewUserService(r repo.UserRepo, h *auth.Hasher) *UserService {
	return &UserService{repo: r, hasher: h}
}

// Register hashes the password and creates the user with an empty profile
// and a fresh points ledger.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
// ErrUserNotFound and ErrWrongPassword stay distinct so the login page can
// tell the visitor which one went wrong.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	if !s.hasher.Check(password, u.PasswordHash) {
		return dom.User{}, ErrWrongPassword
	}
	return u, nil
}

// FullUser expands a user id into the composite identity view.
func (s *UserService) FullUser(ctx context.Context, id int64) (dom.FullUser, error) {
	fu, err := s.repo.GetFullUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.FullUser{}, ErrNotFound
		}
		return dom.FullUser{}, err
	}
	return fu, nil
}

// Points returns the user's current ledger.
func (s *UserService) Points(ctx context.Context, id int64) (dom.PointsLedger, error) {
	ledger, err := s.repo.GetPoints(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PointsLedger{}, ErrNotFound
		}
		return dom.PointsLedger{}, err
	}
	return ledger, nil
}

// UpdateProfile changes the email (when it differs) and name/phone. The
// phone is stored as given; format checks are the caller's concern.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, email, name, phone string) error {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	err := s.repo.Update(ctx, id, email, name, phone)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return ErrEmailTaken
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// AddPoints accrues delta points for the store and returns the new balance.
// Balances never drop below zero.
func (s *UserService) AddPoints(ctx context.Context, userID int64, storeID string, delta int) (int, error) {
	balance, err := s.repo.AddPoints(ctx, userID, storeID, delta)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return balance, nil
}
