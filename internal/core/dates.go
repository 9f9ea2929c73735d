package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dayMonthRe = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})$`)

// ExpandDayMonth turns a bare day/month string ("5/3", "26.3", "31-12") into
// a fully qualified DD.MM.YYYY date using the given year. Anything that does
// not look like day/month (already has a year, free text, empty) is returned
// trimmed and otherwise untouched.
//
// The operator's sheet never carries a year, so we assume the current one.
// That is wrong for a trip that crossed a year boundary before the invoice
// was written; the operator fixes those by editing the field. Kept as-is on
// purpose.
func ExpandDayMonth(s string, year int) string {
	clean := strings.TrimSpace(s)
	m := dayMonthRe.FindStringSubmatch(clean)
	if m == nil {
		return clean
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%02d.%02d.%d", day, month, year)
}

// FormatToday renders t as DD/MM/YYYY, the draft's header date format.
func FormatToday(t time.Time) string {
	return t.Format("02/01/2006")
}
