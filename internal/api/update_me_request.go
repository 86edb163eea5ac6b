package api

// UpdateMeRequest updates the caller's own profile. Email is deliberately
// not bindable here; the address is fixed at registration.
// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	Name     *string `json:"name" form:"name" validate:"omitempty,min=1" example:"Alice"`
	Password *string `json:"password" form:"password" validate:"omitempty,min=8" example:"NewSecret123!"`
}
