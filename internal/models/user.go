package models

import "time"

type User struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
