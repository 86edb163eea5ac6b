package api

// NamedItemInput is an embedded tag or ingredient descriptor on a recipe
// write.
// swagger:model api.NamedItemInput
type NamedItemInput struct {
	Name string `json:"name" validate:"required" example:"Vegan"`
}
