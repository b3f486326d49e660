package requests

type LoginRequest struct {
	UserExternalID string `json:"user_external_id" validate:"required,max=64"`
}
