package model

import "time"

// Bar domain object defining a venue owned by exactly one group. Bar names are
// display names and may repeat across groups.
// swagger:model
type Bar struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	GroupID   uint      `gorm:"index;not null" json:"groupId"`
	Name      string    `gorm:"not null" json:"name"`
}
