package userservice

import "github.com/google/uuid"

// User display-данные пользователя из профильного сервиса
type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar *string   `json:"avatar,omitempty"`
}

// ErrorResponse модель ошибки от профильного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
