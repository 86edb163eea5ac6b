package api

// swagger:model api.CreateRecipeRequest
type CreateRecipeRequest struct {
	Title       string           `json:"title" validate:"required" example:"Avocado toast"`
	Description string           `json:"description" example:"Smashed avocado on sourdough"`
	TimeMinutes int              `json:"time_minutes" validate:"required,min=1" example:"10"`
	Price       string           `json:"price" validate:"required,numeric" example:"4.50"`
	Link        string           `json:"link" validate:"omitempty,url" example:"https://example.com/avocado-toast"`
	Tags        []NamedItemInput `json:"tags" validate:"omitempty,dive"`
	Ingredients []NamedItemInput `json:"ingredients" validate:"omitempty,dive"`
}
