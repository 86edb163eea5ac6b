package api

// swagger:model api.RecipeImageResponse
type RecipeImageResponse struct {
	ID    int    `json:"id" example:"1"`
	Image string `json:"image" example:"recipes/7b0c9a2e.jpg"`
}
