package service

import (
	"context"
	"fmt"
	"testing"

	"Loyalty/internal/auth"
	dom "Loyalty/internal/domain"
	"Loyalty/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepo with the same error contract as the
// Postgres implementation.
type fakeUserRepo struct {
	nextID   int64
	users    map[int64]dom.User
	profiles map[int64]dom.Profile
	ledgers  map[int64]dom.PointsLedger
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		nextID:   1,
		users:    map[int64]dom.User{},
		profiles: map[int64]dom.Profile{},
		ledgers:  map[int64]dom.PointsLedger{},
	}
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetFullUser(_ context.Context, id int64) (dom.FullUser, error) {
	u, ok := f.users[id]
	if !ok {
		return dom.FullUser{}, pgx.ErrNoRows
	}
	return dom.FullUser{User: u, Profile: f.profiles[id], Points: f.ledgers[id]}, nil
}

func (f *fakeUserRepo) GetPoints(_ context.Context, id int64) (dom.PointsLedger, error) {
	l, ok := f.ledgers[id]
	if !ok {
		return dom.PointsLedger{}, pgx.ErrNoRows
	}
	return l, nil
}

func (f *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return dom.User{}, repo.ErrEmailTaken
		}
	}
	u := dom.User{ID: f.nextID, Email: email, PasswordHash: passwordHash}
	f.nextID++
	f.users[u.ID] = u
	f.profiles[u.ID] = dom.Profile{UserID: u.ID}
	f.ledgers[u.ID] = dom.PointsLedger{
		CardNumber: fmt.Sprintf("%08d", u.ID),
		Stores:     map[string]int{},
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, email, name, phone string) error {
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if email != u.Email {
		for otherID, other := range f.users {
			if otherID != id && other.Email == email {
				return repo.ErrEmailTaken
			}
		}
		u.Email = email
		f.users[id] = u
	}
	f.profiles[id] = dom.Profile{UserID: id, Name: name, Phone: phone}
	return nil
}

func (f *fakeUserRepo) AddPoints(_ context.Context, userID int64, storeID string, delta int) (int, error) {
	l, ok := f.ledgers[userID]
	if !ok {
		return 0, pgx.ErrNoRows
	}
	balance := l.Apply(storeID, delta)
	f.ledgers[userID] = l
	return balance, nil
}

func newTestService() (*UserService, *fakeUserRepo) {
	r := newFakeUserRepo()
	return NewUserService(r, auth.NewHasher(bcrypt.MinCost)), r
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, r := newTestService()

	u, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "password1", u.PasswordHash)

	// Exactly one row set: user, empty profile, fresh ledger.
	assert.Len(t, r.users, 1)
	assert.Equal(t, dom.Profile{UserID: u.ID}, r.profiles[u.ID])
	ledger := r.ledgers[u.ID]
	assert.Len(t, ledger.CardNumber, 8)
	assert.Empty(t, ledger.Stores)
}

func TestRegisterEmailTaken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, r := newTestService()

	_, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.com", "different9")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, r.users, 1)
}

func TestValidateCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	registered, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	u, err := svc.ValidateCredentials(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = svc.ValidateCredentials(ctx, "a@x.com", "password2")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.ValidateCredentials(ctx, "nobody@x.com", "password1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFullUserNotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.FullUser(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, r := newTestService()

	u, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, u.ID, "b@x.com", "Ada", "0851234567"))
	assert.Equal(t, "b@x.com", r.users[u.ID].Email)
	assert.Equal(t, "Ada", r.profiles[u.ID].Name)
	assert.Equal(t, "0851234567", r.profiles[u.ID].Phone)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, r := newTestService()

	first, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "b@x.com", "password1")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, first.ID, "a@x.com", "Ada", "123"))

	err = svc.UpdateProfile(ctx, first.ID, "b@x.com", "Eve", "456")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Conflict leaves email and profile fields unchanged.
	assert.Equal(t, "a@x.com", r.users[first.ID].Email)
	assert.Equal(t, "Ada", r.profiles[first.ID].Name)
	assert.Equal(t, "123", r.profiles[first.ID].Phone)
}

func TestAddPoints(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService()

	u, err := svc.Register(ctx, "a@x.com", "password1")
	require.NoError(t, err)

	balance, err := svc.AddPoints(ctx, u.ID, "store1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, balance)

	// Overdraw clamps at zero instead of going negative.
	balance, err = svc.AddPoints(ctx, u.ID, "store1", -100)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	ledger, err := svc.Points(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, ledger.Stores["store1"])
}

func TestAddPointsUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.AddPoints(context.Background(), 42, "store1", 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPointsUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()

	_, err := svc.Points(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
