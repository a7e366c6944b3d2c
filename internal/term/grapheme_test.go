package term

import (
	"reflect"
	"testing"
)

func TestGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"ascii", "ab", []string{"a", "b"}},
		{"combining mark", "áb", []string{"á", "b"}},
		{"emoji presentation", "x☀️", []string{"x", "☀️"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GraphemeClusters(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GraphemeClusters(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestGraphemeClusterWidth(t *testing.T) {
	tests := []struct {
		name    string
		cluster string
		want    int
	}{
		{"empty", "", 0},
		{"ascii", "a", 1},
		{"wide cjk", "世", 2},
		{"narrow symbol", "☀", 1},
		{"presentation selector forces wide", "☀️", 2},
		{"combining mark keeps base width", "á", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GraphemeClusterWidth([]rune(tt.cluster)); got != tt.want {
				t.Errorf("GraphemeClusterWidth(%q) = %d, want %d", tt.cluster, got, tt.want)
			}
		})
	}
}
