package models

import "time"

// Language is a spoken language players can filter teammates by.
// code and name are unique among live rows only; a soft-deleted row's
// code may be reused.
// Maps to: languages table
type Language struct {
	ID        ID         `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Code      string     `db:"code" json:"code"`
	FlagURL   *string    `db:"flag_url" json:"flagUrl"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
	DeletedAt *time.Time `db:"deleted_at" json:"deletedAt"`
}
