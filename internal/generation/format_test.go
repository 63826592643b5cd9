package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2025-03-05", "5 Maret 2025"},
		{"2024-12-31", "31 Desember 2024"},
		{"2026-01-01", "1 Januari 2026"},
		{"2025-08-17", "17 Agustus 2025"},
		{"bukan tanggal", "bukan tanggal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "NIP. 1985", IdentityString("NIP", "1985"))
	assert.Equal(t, "1985", IdentityString("", "1985"))
	assert.Equal(t, "-", IdentityString("", ""))
}
