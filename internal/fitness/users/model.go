package users

import (
	"errors"
	"strings"
	"time"
)

const minPasswordLength = 8

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is empty")
	}
	if len(r.Username) < 3 {
		return errors.New("username too short")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("email invalid")
	}
	if len(r.Password) < minPasswordLength {
		return errors.New("password too short")
	}
	return nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
}
