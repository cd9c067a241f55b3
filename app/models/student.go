package models

import "time"

// Student represents a learner registered at a school. A student may be
// unassigned to a class arm ("not assigned" is a valid state).
type Student struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	SchoolID   string      `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassArmID *string     `json:"class_arm_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	RegNo      string      `json:"reg_no" gorm:"not null;uniqueIndex:idx_students_school_regno" validate:"required"`
	FirstName  string      `json:"first_name" gorm:"not null" validate:"required"`
	LastName   string      `json:"last_name" gorm:"not null" validate:"required"`
	Gender     Gender      `json:"gender" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female"`
	Type       StudentType `json:"type" gorm:"type:varchar(10);default:'day'" validate:"omitempty,oneof=day boarding"`
	IsActive   bool        `json:"is_active" gorm:"default:true;index"`
	CreatedAt  time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time  `json:"deleted_at,omitempty" gorm:"index"`

	School   *School   `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	ClassArm *ClassArm `json:"class_arm,omitempty" gorm:"foreignKey:ClassArmID;references:ID"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
