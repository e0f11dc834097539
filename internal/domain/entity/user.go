package entity

import "time"

type User struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	FirstName string
	Email     string
	Banned    bool
}
