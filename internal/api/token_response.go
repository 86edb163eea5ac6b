package api

// swagger:model api.TokenResponse
type TokenResponse struct {
	Token string `json:"token" example:"3f1d7f41-9d4b-4a89-9c2e-5a2e6f9b7c10"`
}
