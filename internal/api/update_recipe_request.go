package api

// UpdateRecipeRequest is a partial recipe update. Nil fields were absent
// from the payload and stay untouched; a present tags/ingredients list
// (even empty) replaces the associations. There is intentionally no owner
// field, so ownership can never change through this path.
// swagger:model api.UpdateRecipeRequest
type UpdateRecipeRequest struct {
	Title       *string           `json:"title" validate:"omitempty,min=1" example:"Avocado toast"`
	Description *string           `json:"description"`
	TimeMinutes *int              `json:"time_minutes" validate:"omitempty,min=1" example:"10"`
	Price       *string           `json:"price" validate:"omitempty,numeric" example:"4.50"`
	Link        *string           `json:"link" validate:"omitempty,url"`
	Tags        *[]NamedItemInput `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]NamedItemInput `json:"ingredients" validate:"omitempty,dive"`
}
