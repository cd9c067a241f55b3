package models

import "time"

// Payment represents a single payment transaction against a fee. Amount is
// in integer minor currency units. TrxRef is the unique transaction
// reference and doubles as the idempotency key for gateway callbacks.
type Payment struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	FeeID     string        `json:"fee_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SchoolID  string        `json:"school_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount    int64         `json:"amount" gorm:"not null;type:bigint" validate:"required,gt=0"`
	Mode      PaymentMode   `json:"mode_of_payment" gorm:"type:varchar(20);not null" validate:"required"`
	Status    PaymentStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending';index" validate:"omitempty,oneof=pending success failed"`
	TransDate time.Time     `json:"trans_date" gorm:"not null;index" validate:"required"`
	TrxRef    string        `json:"trx_ref" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty" gorm:"index"`

	Fee     *Fee     `json:"fee,omitempty" gorm:"foreignKey:FeeID;references:ID"`
	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// IsSuccessful reports whether the payment counts toward paid totals.
// Pending and failed payments never reduce an outstanding balance.
func (p *Payment) IsSuccessful() bool {
	return p.Status == PaymentSuccess
}
