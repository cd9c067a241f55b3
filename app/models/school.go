package models

import "time"

// School is a single school under a group school. It owns sessions,
// class arms, students, staff and fee definitions.
type School struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	GroupSchoolID string     `json:"group_school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name          string     `json:"name" gorm:"not null" validate:"required"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string    `json:"phone,omitempty"`
	Address       *string    `json:"address,omitempty" gorm:"type:text"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	GroupSchool *GroupSchool `json:"group_school,omitempty" gorm:"foreignKey:GroupSchoolID;references:ID"`
	Sessions    []*Session   `json:"sessions,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	ClassArms   []*ClassArm  `json:"class_arms,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
}
