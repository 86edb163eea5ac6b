package api

// ReplaceIngredientRequest is a full ingredient update, so the name is
// mandatory.
// swagger:model api.ReplaceIngredientRequest
type ReplaceIngredientRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1" example:"Salt"`
}
