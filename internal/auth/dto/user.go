package dto

import (
	"time"
)

type UserOutput struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Credits  int    `json:"credits"`
}

type AuthResponse struct {
	Message   string     `json:"message"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      UserOutput `json:"user"`
}

type MeResponse struct {
	User UserOutput `json:"user"`
}
