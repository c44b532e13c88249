package lang

import (
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// uuidTagHandler implements the `uuid` built-in (spec §4.16): argument
// must be a string, constructed into a UUID value without further
// validation beyond what the constructor itself requires.
func uuidTagHandler(arg interface{}) (interface{}, error) {
	s, ok := arg.(string)
	if !ok {
		return nil, newErr(KindSemantic, "uuid tag requires a string argument")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, wrapErr(KindSemantic, err, "invalid uuid literal %q", s)
	}
	return id, nil
}

// queueTagHandler implements the `queue` built-in (spec §4.16):
// argument must be a vector, copied into an empty persistent queue.
func queueTagHandler(arg interface{}) (interface{}, error) {
	v, ok := arg.(*Vector)
	if !ok {
		return nil, newErr(KindSemantic, "queue tag requires a vector argument")
	}
	return NewQueue(v.Items...), nil
}

// instantPattern implements the grammar spec §4.16 gives for `inst`:
// YYYY(-MM(-DD(THH(:MM(:SS(.ffff)?)?)?)?)?)?([Z]|[+-]HH:MM)?
var instantPattern = regexp.MustCompile(
	`^([0-9]{4})(?:-([0-9]{2})(?:-([0-9]{2})(?:T([0-9]{2})(?::([0-9]{2})(?::([0-9]{2})(?:\.([0-9]+))?)?)?)?)?)?` +
		`(Z|[+-][0-9]{2}:[0-9]{2})?$`)

// instTagHandler implements the `inst` built-in (spec §4.16): argument
// must be a string matching instantPattern; every field is range
// validated, the zone offset (if any) is applied, and the omitted
// suffix of the grammar defaults to the 1970-01-01T00:00:00.000Z
// epoch's corresponding fields.
func instTagHandler(arg interface{}) (interface{}, error) {
	s, ok := arg.(string)
	if !ok {
		return nil, newErr(KindSemantic, "inst tag requires a string argument")
	}
	m := instantPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, newErr(KindSemantic, "Invalid timestamp %q", s)
	}

	year, _ := strconv.Atoi(m[1])
	month := atoiDefault(m[2], 1)
	day := atoiDefault(m[3], 1)
	hour := atoiDefault(m[4], 0)
	minute := atoiDefault(m[5], 0)
	second := atoiDefault(m[6], 0)
	millis := parseMillis(m[7])

	if month < 1 || month > 12 {
		return nil, newErr(KindSemantic, "Invalid month in timestamp %q", s)
	}
	if day < 1 || day > lastDayOfMonth(year, month) {
		return nil, newErr(KindSemantic, "Invalid day in timestamp %q", s)
	}
	if hour < 0 || hour > 23 {
		return nil, newErr(KindSemantic, "Invalid hour in timestamp %q", s)
	}
	if minute < 0 || minute > 59 {
		return nil, newErr(KindSemantic, "Invalid minute in timestamp %q", s)
	}
	maxSecond := 59
	if minute == 59 {
		maxSecond = 60
	}
	if second < 0 || second > maxSecond {
		return nil, newErr(KindSemantic, "Invalid second in timestamp %q", s)
	}
	if millis < 0 || millis > 999 {
		return nil, newErr(KindSemantic, "Invalid millisecond in timestamp %q", s)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, millis*int(time.Millisecond), time.UTC)

	if offset := m[8]; offset != "" && offset != "Z" {
		sign := 1
		if offset[0] == '-' {
			sign = -1
		}
		offHour, _ := strconv.Atoi(offset[1:3])
		offMin, _ := strconv.Atoi(offset[4:6])
		delta := time.Duration(sign) * (time.Duration(offHour)*time.Hour + time.Duration(offMin)*time.Minute)
		t = t.Add(-delta)
	}

	return t.UTC(), nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, _ := strconv.Atoi(s)
	return n
}

// parseMillis normalizes the captured fractional-second digits (any
// length per the grammar's `ffff`) to milliseconds.
func parseMillis(s string) int {
	if s == "" {
		return 0
	}
	for len(s) < 3 {
		s += "0"
	}
	n, _ := strconv.Atoi(s[:3])
	return n
}

func lastDayOfMonth(year, month int) int {
	days := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return days[month-1]
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
