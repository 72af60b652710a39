package domain

import "time"

type User struct {
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
