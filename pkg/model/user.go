package model

import "time"

// User domain object defining a user. Nicknames are scoped to a group; the
// same nickname may exist independently in two different groups.
// swagger:model
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	GroupID   uint      `gorm:"not null;uniqueIndex:idx_users_group_nickname" json:"groupId"`
	Group     Group     `json:"-"`
	Nickname  string    `gorm:"not null;uniqueIndex:idx_users_group_nickname" json:"nickname"`
	Password  string    `json:"-"`
}
