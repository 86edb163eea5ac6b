package api

// UpdateTagRequest renames a tag. Name is a pointer so a PATCH that omits
// it is a valid no-op.
// swagger:model api.UpdateTagRequest
type UpdateTagRequest struct {
	Name *string `json:"name" form:"name" validate:"omitempty,min=1" example:"Vegan"`
}
