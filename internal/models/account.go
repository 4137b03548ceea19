package models

import "time"

// AccountDB represents an account record in the database.
// PasswordHash holds the bcrypt hash and is never serialized.
type AccountDB struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AccountInput carries registration fields before hashing.
type AccountInput struct {
	Name     string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}
