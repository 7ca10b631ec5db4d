package model

import "time"

// Availability is a single "I'll be at this bar during this window" row. Start
// and end are kept as the submitted "HH:MM" literals; the page renders them
// untouched.
// swagger:model
type Availability struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	User      User      `json:"user"`
	BarID     uint      `gorm:"index;not null" json:"barId"`
	Bar       Bar       `json:"bar"`
	Date      time.Time `gorm:"type:date;index" json:"date"`
	StartTime string    `gorm:"size:5;not null" json:"startTime"`
	EndTime   string    `gorm:"size:5;not null" json:"endTime"`
}
