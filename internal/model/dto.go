package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Incoming lookup request, taken from the JSON body or query parameters.
type DTOWhoisRequest struct {
	Domain string `json:"domain" validate:"required"`
	Type   string `json:"type" validate:"oneof=domain contact"`
}

// Successful lookup response envelope: the input is echoed back alongside the
// normalized record.
type DTOWhoisResponse struct {
	Domain string `json:"domain"`
	Type   string `json:"type"`
	Data   any    `json:"data"`
}

// Failure response shape. Status and Details are only set for upstream
// errors, where the provider's own status and message are passed along.
type DTOErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}

type DTOLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type DTOLoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type DTOLookupHistoryResponse struct {
	Lookups []*LookupEntry `json:"lookups"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
