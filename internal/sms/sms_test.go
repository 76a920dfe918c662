package sms

import "testing"

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"bare local number", "6971234567", "+306971234567"},
		{"already international", "+306971234567", "+306971234567"},
		{"country code without plus", "306971234567", "+306971234567"},
		{"with spaces and dashes", "697 123-4567", "+306971234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPhoneNumber(tt.phone); got != tt.want {
				t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tt.phone, got, tt.want)
			}
		})
	}
}
