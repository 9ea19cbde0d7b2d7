package common

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout
const (
	DateFormatYYYYMMDD         = "2006-01-02"
	DateFormatStatement        = "2006-01-02 15:04:05"
	DateFormatBankDate         = "02.01.2006"
	DateFormatBankDateTime     = "02.01.2006 15:04:05"
	DateFormatYYYYMMDDWithTime = "2006-01-02T15:04:05-07:00" // same as RFC3339/ISO8601
)

// TIMEZONE
const (
	TimezoneMinsk       = "Europe/Minsk"
	minskUTCOffsetHours = 3
)

// MinskTime is the bank's home timezone. Statement dates carry no offset, so
// they are pinned here rather than to the caller's local zone.
var MinskTime = time.FixedZone(TimezoneMinsk, minskUTCOffsetHours*60*60)

var (
	bankDateRe     = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)
	bankDateTimeRe = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4}) (\d{2}):(\d{2}):(\d{2})`)
)

// ParseBankDate extracts the first DD.MM.YYYY date found in str and returns
// it as midnight in the bank's timezone.
func ParseBankDate(str string) (time.Time, error) {
	m := bankDateRe.FindStringSubmatch(str)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: no date in %q", ErrInvalidStatementDates, str)
	}

	day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, MinskTime), nil
}

// ParseBankDateTime extracts the first "DD.MM.YYYY HH:MM:SS" stamp found in
// str, pinned to the bank's timezone.
func ParseBankDateTime(str string) (time.Time, error) {
	m := bankDateTimeRe.FindStringSubmatch(str)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: no datetime in %q", ErrInvalidStatementDates, str)
	}

	day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
	hour, minute, second := atoi(m[4]), atoi(m[5]), atoi(m[6])
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, MinskTime), nil
}

// FormatStatementDate renders t the way the statement endpoint expects:
// "YYYY-MM-DD HH:MM:SS" in UTC.
func FormatStatementDate(t time.Time) string {
	return t.UTC().Format(DateFormatStatement)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
