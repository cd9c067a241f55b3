package fees

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/charlykso/smart-s-sub003/app/ledger"
)

// feeAmount resolves the fee amount in minor units. Clients that bill in
// major units send amount_major as a decimal string, which takes precedence
// over the plain amount field.
func feeAmount(minor int64, major string) (int64, error) {
	if major == "" {
		return minor, nil
	}
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, errors.New("amount must not be negative")
	}
	return ledger.FromMajor(d), nil
}
