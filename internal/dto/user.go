package dto

import dom "Loyalty/internal/domain"

// SignupRequest is the form body for POST /signup. Field names match the
// original signup form.
type SignupRequest struct {
	Username       string `form:"username"`
	Password       string `form:"password"`
	PasswordRepeat string `form:"password-repeat"`
}

// LoginRequest is the form body for POST /login.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ProfileRequest is the form body for POST /profile.
type ProfileRequest struct {
	Email string `form:"email"`
	Name  string `form:"name"`
	Phone string `form:"phone"`
}

// AddPointsRequest is the form body for POST /points: a store id and a
// point delta (negative deltas redeem points).
type AddPointsRequest struct {
	StoreID string `form:"id" binding:"required"`
	Points  int    `form:"points"`
}

// UserResponse is the flattened identity view pages render.
type UserResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	CardNumber string `json:"card_number"`
}

// PointsResponse mirrors the ledger shape.
type PointsResponse struct {
	CardNumber string         `json:"card_number"`
	Stores     map[string]int `json:"stores"`
}

// PageResponse is the view model every page endpoint renders. User and
// Points are null for logged-out visitors; Flash carries the one-shot
// message set by the previous request, if any.
type PageResponse struct {
	LoggedIn bool            `json:"logged_in"`
	User     *UserResponse   `json:"user"`
	Points   *PointsResponse `json:"points"`
	Flash    string          `json:"flash,omitempty"`
}

// ListStoresResponse wraps the store directory.
type ListStoresResponse struct {
	Items []dom.Store `json:"items"`
}

// FullUserToResponse flattens the composite into the page view.
func FullUserToResponse(fu dom.FullUser) (*UserResponse, *PointsResponse) {
	return &UserResponse{
			ID:         fu.User.ID,
			Email:      fu.User.Email,
			Name:       fu.Profile.Name,
			Phone:      fu.Profile.Phone,
			CardNumber: fu.Points.CardNumber,
		}, &PointsResponse{
			CardNumber: fu.Points.CardNumber,
			Stores:     fu.Points.Stores,
		}
}
