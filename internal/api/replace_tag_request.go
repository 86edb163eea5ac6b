package api

// ReplaceTagRequest is a full tag update, so the name is mandatory.
// swagger:model api.ReplaceTagRequest
type ReplaceTagRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1" example:"Vegan"`
}
