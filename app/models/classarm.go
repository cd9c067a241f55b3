package models

import "time"

// ClassArm is a specific class section (e.g. "JSS 1A") within a school.
//
// CachedStudentCount is denormalized: it mirrors the number of active
// students assigned to the arm but is never the source of truth. The
// membership counter recomputes it on demand; readers needing accuracy
// trigger a recount rather than trust the cached value.
type ClassArm struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	SchoolID           string     `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name               string     `json:"name" gorm:"not null" validate:"required"`
	ClassTeacherID     *string    `json:"class_teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Capacity           int        `json:"capacity" gorm:"default:0" validate:"gte=0"`
	CachedStudentCount int        `json:"cached_student_count" gorm:"default:0"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	School       *School    `json:"school,omitempty" gorm:"foreignKey:SchoolID;references:ID"`
	ClassTeacher *User      `json:"class_teacher,omitempty" gorm:"foreignKey:ClassTeacherID;references:ID"`
	Students     []*Student `json:"students,omitempty" gorm:"foreignKey:ClassArmID;references:ID"`
}
