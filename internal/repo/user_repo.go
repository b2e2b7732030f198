package repo

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	dom "Loyalty/internal/domain"
	"Loyalty/internal/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmailTaken is returned when a create or email change collides with an
// existing account.
var ErrEmailTaken = errors.New("email already registered")

const cardNumberAttempts = 5

// UserRepo provides user, profile and points-ledger persistence.
type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (dom.User, error)
	GetFullUser(ctx context.Context, id int64) (dom.FullUser, error)
	GetPoints(ctx context.Context, id int64) (dom.PointsLedger, error)
	Create(ctx context.Context, email, passwordHash string) (dom.User, error)
	Update(ctx context.Context, id int64, email, name, phone string) error
	AddPoints(ctx context.Context, userID int64, storeID string, delta int) (int, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// FindByEmail returns the user with the given email. pgx.ErrNoRows on miss.
func (r *PGUserRepo) FindByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetFullUser returns the user together with profile and points ledger.
// pgx.ErrNoRows when any of the three rows is missing.
func (r *PGUserRepo) GetFullUser(ctx context.Context, id int64) (dom.FullUser, error) {
	var fu dom.FullUser
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&fu.User.ID, &fu.User.Email, &fu.User.PasswordHash, &fu.User.CreatedAt)
	if err != nil {
		return dom.FullUser{}, err
	}
	err = r.db.QueryRow(ctx,
		`SELECT user_id, name, phone FROM user_info WHERE user_id = $1`,
		id,
	).Scan(&fu.Profile.UserID, &fu.Profile.Name, &fu.Profile.Phone)
	if err != nil {
		return dom.FullUser{}, err
	}
	fu.Points, err = r.GetPoints(ctx, id)
	if err != nil {
		return dom.FullUser{}, err
	}
	return fu, nil
}

// GetPoints returns the points ledger. pgx.ErrNoRows when absent.
func (r *PGUserRepo) GetPoints(ctx context.Context, id int64) (dom.PointsLedger, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT data FROM user_points WHERE user_id = $1`,
		id,
	).Scan(&raw)
	if err != nil {
		return dom.PointsLedger{}, err
	}
	return decodeLedger(raw)
}

// Create inserts the user, an empty profile and a fresh ledger in one
// transaction. ErrEmailTaken when the email is already registered.
func (r *PGUserRepo) Create(ctx context.Context, email, passwordHash string) (dom.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.User{}, err
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists); err != nil {
		return dom.User{}, err
	}
	if exists {
		return dom.User{}, ErrEmailTaken
	}

	var u dom.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id, email, password_hash, created_at`,
		email, passwordHash,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		// UNIQUE index backstops the check above under concurrent signups.
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO user_info (user_id, name, phone) VALUES ($1, '', '')`,
		u.ID,
	); err != nil {
		return dom.User{}, err
	}

	card, err := r.freshCardNumber(ctx, tx)
	if err != nil {
		return dom.User{}, err
	}
	ledger, err := json.Marshal(dom.PointsLedger{CardNumber: card, Stores: map[string]int{}})
	if err != nil {
		return dom.User{}, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO user_points (user_id, data) VALUES ($1, $2)`,
		u.ID, ledger,
	); err != nil {
		return dom.User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dom.User{}, err
	}
	return u, nil
}

// Update changes the email when it differs, and name/phone unconditionally.
// ErrEmailTaken when the new email belongs to a different user.
func (r *PGUserRepo) Update(ctx context.Context, id int64, email, name, phone string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var current string
	if err := tx.QueryRow(ctx,
		`SELECT email FROM users WHERE id = $1`, id,
	).Scan(&current); err != nil {
		return err
	}
	if email != current {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`,
			email, id,
		).Scan(&taken); err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken
		}
		if _, err := tx.Exec(ctx,
			`UPDATE users SET email = $2 WHERE id = $1`, id, email,
		); err != nil {
			if utils.IsPGUniqueViolation(err) {
				return ErrEmailTaken
			}
			return err
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE user_info SET name = $2, phone = $3 WHERE user_id = $1`,
		id, name, phone,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// AddPoints applies delta to the balance for storeID and returns the new
// balance, clamped at zero. The ledger row is locked for the duration of the
// transaction so concurrent accruals for the same user serialize instead of
// losing updates.
func (r *PGUserRepo) AddPoints(ctx context.Context, userID int64, storeID string, delta int) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var raw []byte
	if err := tx.QueryRow(ctx,
		`SELECT data FROM user_points WHERE user_id = $1 FOR UPDATE`,
		userID,
	).Scan(&raw); err != nil {
		return 0, err
	}
	ledger, err := decodeLedger(raw)
	if err != nil {
		return 0, err
	}
	balance := ledger.Apply(storeID, delta)

	updated, err := json.Marshal(ledger)
	if err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE user_points SET data = $2 WHERE user_id = $1`,
		userID, updated,
	); err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return balance, nil
}

// freshCardNumber draws 8-digit card numbers until one is unused. Collisions
// are near-impossible at current scale, so the retry bound is a formality.
func (r *PGUserRepo) freshCardNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	for i := 0; i < cardNumberAttempts; i++ {
		card, err := randomCardNumber()
		if err != nil {
			return "", err
		}
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM user_points WHERE data->>'card_number' = $1)`,
			card,
		).Scan(&taken); err != nil {
			return "", err
		}
		if !taken {
			return card, nil
		}
	}
	return "", fmt.Errorf("card number space exhausted after %d attempts", cardNumberAttempts)
}

func randomCardNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000000))
	if err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	return fmt.Sprintf("%08d", n.Int64()), nil
}

func decodeLedger(raw []byte) (dom.PointsLedger, error) {
	var ledger dom.PointsLedger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return dom.PointsLedger{}, fmt.Errorf("decode points ledger: %w", err)
	}
	if ledger.Stores == nil {
		ledger.Stores = map[string]int{}
	}
	return ledger, nil
}
