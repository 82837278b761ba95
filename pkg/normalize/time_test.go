package normalize

import (
	"errors"
	"testing"
)

func TestTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{
			name:  "already canonical",
			input: "09:05",
			want:  "09:05",
		},
		{
			name:  "single digit hour padded",
			input: "9:05",
			want:  "09:05",
		},
		{
			name:  "surrounding whitespace",
			input: " 18:30 ",
			want:  "18:30",
		},
		{
			name:  "midnight",
			input: "0:00",
			want:  "00:00",
		},
		{
			name:  "end of day",
			input: "23:59",
			want:  "23:59",
		},
		{
			name:    "single digit minute rejected",
			input:   "9:5",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "missing colon",
			input:   "0905",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "trailing seconds",
			input:   "09:05:00",
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "hour out of range",
			input:   "24:00",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "minute out of range",
			input:   "12:60",
			wantErr: ErrInvalidTimeRange,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Time(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Time(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Time(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Time(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
