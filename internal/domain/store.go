package domain

// Store is one participating store from the directory feed.
type Store struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Promotion   string `json:"promotion"`
}
