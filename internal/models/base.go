package models

import "time"

// BaseModel is gorm.Model without DeletedAt: deletes in this schema are hard
// deletes, and soft-deleted rows would defeat the unique indexes.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
