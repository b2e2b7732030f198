package domain

import "time"

// User is the identity record: unique email plus password hash.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds the editable personal details, 1:1 with User.
// Created empty at signup, filled in later via profile update.
type Profile struct {
	UserID int64
	Name   string
	Phone  string
}

// PointsLedger is the per-user loyalty state: a card number assigned once at
// signup and the store id -> balance map. Balances never go below zero.
// The JSON shape is the persisted format of the user_points.data column.
type PointsLedger struct {
	CardNumber string         `json:"card_number"`
	Stores     map[string]int `json:"stores"`
}

// Apply adds delta to the balance for storeID, clamping at zero, and
// returns the new balance. Missing stores start from zero.
func (l *PointsLedger) Apply(storeID string, delta int) int {
	if l.Stores == nil {
		l.Stores = map[string]int{}
	}
	balance := l.Stores[storeID] + delta
	if balance < 0 {
		balance = 0
	}
	l.Stores[storeID] = balance
	return balance
}

// FullUser is the composite view a resolved session expands to.
type FullUser struct {
	User    User
	Profile Profile
	Points  PointsLedger
}
