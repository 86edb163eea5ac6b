package model

// Recipe belongs to exactly one user. Price is carried as a decimal string
// so values like "12.50" survive the round trip unchanged.
type Recipe struct {
	ID          int          `db:"id" json:"id"`
	UserID      int          `db:"user_id" json:"-"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	TimeMinutes int          `db:"time_minutes" json:"time_minutes"`
	Price       string       `db:"price" json:"price"`
	Link        string       `db:"link" json:"link"`
	ImagePath   string       `db:"image_path" json:"image_path"`
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}
