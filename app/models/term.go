package models

import "time"

// Term represents a term within an academic session.
type Term struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	SessionID string     `json:"session_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name      string     `json:"name" gorm:"not null" validate:"required"`
	StartDate CustomDate `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate   CustomDate `json:"end_date" gorm:"not null;type:date" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:false;index"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Session *Session `json:"session,omitempty" gorm:"foreignKey:SessionID;references:ID"`
}

// IsCurrentByDate checks if the term covers the given date.
func (t *Term) IsCurrentByDate(at time.Time) bool {
	return at.After(t.StartDate.Time) && at.Before(t.EndDate.Time)
}
