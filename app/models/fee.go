package models

import "time"

// Fee represents a billable charge defined per school and term. Amount is
// held in integer minor currency units (kobo); conversion to a display
// amount happens only at the presentation boundary.
//
// A fee with neither a class-arm nor a student-type restriction applies to
// every student of the school for the term. Only approved fees are eligible
// for payment and outstanding calculations.
type Fee struct {
	ID          string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	SchoolID    string       `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID      string       `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string       `json:"name" gorm:"not null" validate:"required"`
	Type        string       `json:"type" gorm:"type:varchar(50)" validate:"required"`
	Amount      int64        `json:"amount" gorm:"not null;type:bigint" validate:"gte=0"`
	ClassArmID  *string      `json:"class_arm_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	StudentType *StudentType `json:"student_type,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=day boarding"`
	IsApproved  bool         `json:"is_approved" gorm:"default:false;index"`
	ApprovedBy  *string      `json:"approved_by,omitempty" gorm:"type:uuid"`
	ApprovedAt  *time.Time   `json:"approved_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time   `json:"deleted_at,omitempty" gorm:"index"`

	School *School `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	Term   *Term   `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}

// AppliesTo reports whether the fee's restrictions match the student.
// School and term matching are handled by the caller; this only checks
// the class-arm and student-type restrictions.
func (f *Fee) AppliesTo(s *Student) bool {
	if f.ClassArmID != nil {
		if s.ClassArmID == nil || *s.ClassArmID != *f.ClassArmID {
			return false
		}
	}
	if f.StudentType != nil && *f.StudentType != s.Type {
		return false
	}
	return true
}
