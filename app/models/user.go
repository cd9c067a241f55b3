package models

import "time"

// User is any authenticated account: staff, student or parent. The
// optional references carry the role's scope associations — a school for
// school-scoped roles, a group school for ICT administrators and
// proprietors, a student record for student accounts.
type User struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Email         string     `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password      string     `json:"-" gorm:"not null" validate:"required,min=8"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name" gorm:"not null" validate:"required"`
	Phone         string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	SchoolID      *string    `json:"school_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	GroupSchoolID *string    `json:"group_school_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	StudentID     *string    `json:"student_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Roles []*Role `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Role represents a user role (e.g., admin, bursar)
type Role struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Users []*User `json:"users,omitempty" gorm:"many2many:user_roles;"`
}

// UserRole links a user to a role.
type UserRole struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string    `json:"user_id" gorm:"not null;index;type:uuid"`
	RoleID    string    `json:"role_id" gorm:"not null;index;type:uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
