package api

// UpdateIngredientRequest renames an ingredient; same no-op PATCH semantics
// as UpdateTagRequest.
// swagger:model api.UpdateIngredientRequest
type UpdateIngredientRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=1" example:"Salt"`
}
