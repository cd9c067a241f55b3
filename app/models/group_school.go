package models

import "time"

// GroupSchool is the top-level tenant owning one or more schools.
// It is created by a super-admin and, apart from renames, immutable once
// schools reference it.
type GroupSchool struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Schools []*School `json:"schools,omitempty" gorm:"foreignKey:GroupSchoolID;references:ID"`
}
