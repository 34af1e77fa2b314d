package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tlv300/whois-be/internal/config"
	"github.com/tlv300/whois-be/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Login(ctx context.Context, req *model.DTOLoginRequest) (*model.DTOLoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Claims, error)
}

type authService struct {
	admin     config.AdminConfig
	jwtConfig config.JWTConfig
}

func NewAuthService(admin config.AdminConfig, jwtConfig config.JWTConfig) IAuthService {
	return &authService{
		admin:     admin,
		jwtConfig: jwtConfig,
	}
}

// Login checks the credentials against the env-configured admin account.
// With no admin configured, every attempt fails.
func (s *authService) Login(ctx context.Context, req *model.DTOLoginRequest) (*model.DTOLoginResponse, error) {
	if s.admin.Username == "" || s.admin.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if req.Username != s.admin.Username {
		return nil, ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	expirationTime := time.Now().Add(s.jwtConfig.AccessTokenExpiresIn)
	claims := &model.Claims{
		Username: req.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "whois-be",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &model.DTOLoginResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*model.Claims, error) {
	claims := &model.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
