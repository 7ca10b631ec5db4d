package model

import "time"

// Group domain object defining a named circle of people sharing a set of bars
// swagger:model
type Group struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	// Slug is derived from Name at creation time and is the URL path segment of
	// the group page.
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	// Premium is reserved for paid plans. Nothing reads it yet.
	Premium bool   `json:"premium"`
	Users   []User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"users,omitempty"`
	Bars    []Bar  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bars,omitempty"`
}
