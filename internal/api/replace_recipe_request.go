package api

// ReplaceRecipeRequest is a full recipe update: the scalar fields are
// mandatory, while tags/ingredients keep the presence-based rebuild
// semantics of UpdateRecipeRequest.
// swagger:model api.ReplaceRecipeRequest
type ReplaceRecipeRequest struct {
	Title       string            `json:"title" validate:"required" example:"Avocado toast"`
	Description string            `json:"description"`
	TimeMinutes int               `json:"time_minutes" validate:"required,min=1" example:"10"`
	Price       string            `json:"price" validate:"required,numeric" example:"4.50"`
	Link        string            `json:"link" validate:"omitempty,url"`
	Tags        *[]NamedItemInput `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]NamedItemInput `json:"ingredients" validate:"omitempty,dive"`
}
