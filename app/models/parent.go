package models

import "time"

// ParentStudent links a parent account to one of their children. A parent
// may only view records of students linked here.
type ParentStudent struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ParentID     string     `json:"parent_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID    string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Relationship string     `json:"relationship" gorm:"type:varchar(20)" validate:"omitempty,oneof=father mother guardian other"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Parent  *User    `json:"parent,omitempty" gorm:"foreignKey:ParentID;references:ID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
