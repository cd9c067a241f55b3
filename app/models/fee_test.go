package models

import "testing"

func TestFeeAppliesTo(t *testing.T) {
	armA := "arm-a"
	boarding := BoardingStudent

	tests := []struct {
		name    string
		fee     Fee
		student Student
		want    bool
	}{
		{
			name:    "unrestricted fee applies to everyone",
			fee:     Fee{},
			student: Student{Type: DayStudent},
			want:    true,
		},
		{
			name:    "arm restriction matches",
			fee:     Fee{ClassArmID: &armA},
			student: Student{ClassArmID: &armA},
			want:    true,
		},
		{
			name:    "arm restriction excludes unassigned student",
			fee:     Fee{ClassArmID: &armA},
			student: Student{},
			want:    false,
		},
		{
			name:    "type restriction excludes day student",
			fee:     Fee{StudentType: &boarding},
			student: Student{Type: DayStudent},
			want:    false,
		},
		{
			name:    "both restrictions must match",
			fee:     Fee{ClassArmID: &armA, StudentType: &boarding},
			student: Student{ClassArmID: &armA, Type: BoardingStudent},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fee.AppliesTo(&tt.student); got != tt.want {
				t.Errorf("AppliesTo() = %v, want %v", got, tt.want)
			}
		})
	}
}
