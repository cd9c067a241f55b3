package fees

import "testing"

func TestFeeAmount(t *testing.T) {
	tests := []struct {
		name    string
		minor   int64
		major   string
		want    int64
		wantErr bool
	}{
		{"minor units pass through", 50000, "", 50000, false},
		{"major string overrides minor", 0, "1250.50", 125050, false},
		{"whole major amount", 12345, "300", 30000, false},
		{"zero major", 0, "0", 0, false},
		{"garbage major", 0, "12.3.4", 0, true},
		{"negative major", 0, "-5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := feeAmount(tt.minor, tt.major)
			if (err != nil) != tt.wantErr {
				t.Fatalf("feeAmount(%d, %q) error = %v, wantErr %v", tt.minor, tt.major, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("feeAmount(%d, %q) = %d, want %d", tt.minor, tt.major, got, tt.want)
			}
		})
	}
}
