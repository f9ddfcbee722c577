package users

import "time"

// User es una credencial del sistema. PasswordHash nunca sale por la API.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterInput son los datos en claro que llegan del alta.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}
