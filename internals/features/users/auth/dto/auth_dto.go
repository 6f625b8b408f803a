// dto/auth_dto.go
package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

type LoginResponse struct {
	AccessToken       string  `json:"access_token"`
	TokenType         string  `json:"token_type"`
	ExpiresIn         int64   `json:"expires_in"`
	Role              string  `json:"role"`
	EstablecimientoID *string `json:"establecimiento_id,omitempty"`
}
