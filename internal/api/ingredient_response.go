package api

// swagger:model api.IngredientResponse
type IngredientResponse struct {
	ID   int    `json:"id" example:"3"`
	Name string `json:"name" example:"Salt"`
}
