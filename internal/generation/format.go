package generation

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/modulajar/internal/lessonplan"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders a YYYY-MM-DD date the Indonesian way ("5 Maret 2025").
// Unparsable input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(lessonplan.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// IdentityString formats an employee id for the signature block: "NIP. 123",
// the bare number when no type is chosen, or "-" when both are empty.
func IdentityString(idType, number string) string {
	if idType != "" {
		return fmt.Sprintf("%s. %s", idType, number)
	}
	if number != "" {
		return number
	}
	return "-"
}
