package normalize

import (
	"reflect"
	"testing"
)

func TestTrimEach(t *testing.T) {
	got := TrimEach([]string{" Keynote ", "Networking", "  "})
	want := []string{"Keynote", "Networking", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimEach = %v, want %v", got, want)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{
			name:  "preserves first seen order",
			items: []string{"go", "cloud", "go", "ai", "cloud"},
			want:  []string{"go", "cloud", "ai"},
		},
		{
			name:  "no duplicates unchanged",
			items: []string{"a", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "empty slice",
			items: []string{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dedupe(tt.items); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dedupe(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}

func TestAllNonEmpty(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  bool
	}{
		{"all populated", []string{"Keynote", "Panel"}, true},
		{"empty slice", []string{}, false},
		{"nil slice", nil, false},
		{"blank element", []string{"Keynote", "   "}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AllNonEmpty(tt.items); got != tt.want {
				t.Errorf("AllNonEmpty(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}
