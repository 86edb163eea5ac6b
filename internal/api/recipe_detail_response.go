package api

// RecipeDetailResponse is the detail shape returned by single-recipe reads
// and by create/update.
// swagger:model api.RecipeDetailResponse
type RecipeDetailResponse struct {
	ID          int                  `json:"id" example:"1"`
	Title       string               `json:"title" example:"Avocado toast"`
	Description string               `json:"description" example:"Smashed avocado on sourdough"`
	TimeMinutes int                  `json:"time_minutes" example:"10"`
	Price       string               `json:"price" example:"4.50"`
	Link        string               `json:"link" example:"https://example.com/avocado-toast"`
	Image       string               `json:"image" example:"recipes/7b0c9a2e.jpg"`
	Tags        []TagResponse        `json:"tags"`
	Ingredients []IngredientResponse `json:"ingredients"`
}
