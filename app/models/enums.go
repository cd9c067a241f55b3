package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// StudentType defines whether a student is a day or boarding student.
type StudentType string

const (
	DayStudent      StudentType = "day"
	BoardingStudent StudentType = "boarding"
)

// PaymentStatus defines the status of a payment transaction.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentMode defines the channel a payment came through.
type PaymentMode string

const (
	ModeCash         PaymentMode = "cash"
	ModePaystack     PaymentMode = "paystack"
	ModeFlutterwave  PaymentMode = "flutterwave"
	ModeBankTransfer PaymentMode = "bank_transfer"
)

// PaymentModes lists every supported payment mode.
var PaymentModes = []PaymentMode{ModeCash, ModePaystack, ModeFlutterwave, ModeBankTransfer}

// IsKnown reports whether the mode is one of the supported channels.
// Legacy rows can carry retired mode strings; those are still aggregated
// under an "unknown" bucket instead of being dropped.
func (m PaymentMode) IsKnown() bool {
	switch m {
	case ModeCash, ModePaystack, ModeFlutterwave, ModeBankTransfer:
		return true
	}
	return false
}

// LedgerStatus defines the derived payment state of a single fee.
type LedgerStatus string

const (
	LedgerUnpaid  LedgerStatus = "unpaid"
	LedgerPartial LedgerStatus = "partial"
	LedgerPaid    LedgerStatus = "paid"
)

// Role names used across the application.
const (
	RoleAdmin       = "admin"
	RoleICTAdmin    = "ict_administrator"
	RoleProprietor  = "proprietor"
	RolePrincipal   = "principal"
	RoleHeadteacher = "headteacher"
	RoleBursar      = "bursar"
	RoleAuditor     = "auditor"
	RoleStudent     = "student"
	RoleParent      = "parent"
)
