package api

// RecipeResponse is the list shape: scalars only, no description.
// swagger:model api.RecipeResponse
type RecipeResponse struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Avocado toast"`
	TimeMinutes int    `json:"time_minutes" example:"10"`
	Price       string `json:"price" example:"4.50"`
	Link        string `json:"link" example:"https://example.com/avocado-toast"`
}
