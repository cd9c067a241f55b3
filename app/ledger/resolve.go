package ledger

import (
	"sort"

	"github.com/charlykso/smart-s-sub003/app/models"
)

// ResolveFees selects, from the supplied fee definitions, those that apply
// to the student for the given term: approved fees of the student's school
// whose class-arm/student-type restrictions match. A student without a
// class arm still resolves the school-wide, unrestricted fees. A term with
// no approved fees yields an empty slice, not an error.
//
// The result is sorted by creation time (then id) so callers get a stable,
// deterministic order.
func ResolveFees(student *models.Student, termID string, fees []models.Fee) []models.Fee {
	resolved := make([]models.Fee, 0, len(fees))
	for _, fee := range fees {
		if !fee.IsApproved {
			continue
		}
		if fee.TermID != termID || fee.SchoolID != student.SchoolID {
			continue
		}
		if !fee.AppliesTo(student) {
			continue
		}
		resolved = append(resolved, fee)
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		if resolved[i].CreatedAt.Equal(resolved[j].CreatedAt) {
			return resolved[i].ID < resolved[j].ID
		}
		return resolved[i].CreatedAt.Before(resolved[j].CreatedAt)
	})
	return resolved
}
