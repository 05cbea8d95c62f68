package utils

import "testing"

func TestTruncate(t *testing.T) {
	if Truncate("hello", 10) != "hello" {
		t.Error("short string unchanged")
	}
	if Truncate("hello world", 5) != "hello..." {
		t.Errorf("got %s", Truncate("hello world", 5))
	}
	if Truncate("x", 0) != "x" {
		t.Error("maxLen 0 returns as-is")
	}
}

func TestJoinNonEmpty(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"all present", []string{"Sinkor", "Monrovia", "Montserrado"}, "Sinkor, Monrovia, Montserrado"},
		{"blank middle", []string{"Sinkor", "", "Montserrado"}, "Sinkor, Montserrado"},
		{"whitespace only", []string{"  ", "\t"}, ""},
		{"empty input", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinNonEmpty(", ", tt.parts...); got != tt.want {
				t.Errorf("JoinNonEmpty() = %q, want %q", got, tt.want)
			}
		})
	}
}
