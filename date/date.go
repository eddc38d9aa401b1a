package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the calendar day of t, in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in its ISO-8601 form, zero-padded, so that string
// order is chronological order.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.time().Format(DateFormat)
}

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d Date) ISOWeek() (year, week int) { return d.time().ISOWeek() }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return Of(time.Now()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		// Monday=0 ... Sunday=6
		offset := (int(d.Weekday()) + 6) % 7
		return d.Add(-offset)
	case Monthly:
		return New(d.Year(), d.Month(), 1)
	case Quarterly:
		quarter := (d.Month() - 1) / 3
		return New(d.Year(), time.Month(quarter*3+1), 1)
	case Yearly:
		return New(d.Year(), time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.Year(), d.Month()+1, 0)
	case Quarterly:
		quarter := (d.Month() - 1) / 3        // in [0..3]
		endMonth := time.Month(quarter*3 + 3) // in [1..12] hence the +3
		return New(d.Year(), endMonth+1, 0)   // last is next month on the day 0
	case Yearly:
		return New(d.Year()+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

var relativeDateRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)

// Parse parses a Date from a string. It is lenient and accepts formats like
// "2025-7-1", and relative dates like "-1d" or "+2w" (from today).
func Parse(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "0d" {
		return Today(), nil
	}

	if match := relativeDateRE.FindStringSubmatch(str); match != nil {
		num, err := strconv.Atoi(match[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid number in relative date %q: %w", str, err)
		}
		if match[1] == "-" {
			num = -num
		}
		today := Today()
		switch match[3] {
		case "d":
			return today.Add(num), nil
		case "w":
			return today.Add(num * 7), nil
		case "m":
			return New(today.Year(), today.Month()+time.Month(num), today.Day()), nil
		case "q":
			return New(today.Year(), today.Month()+time.Month(num*3), today.Day()), nil
		case "y":
			return New(today.Year()+num, today.Month(), today.Day()), nil
		}
	}

	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return Of(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	// Data files are stricter than the command line: no relative dates.
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file, want format %q: %w", str, DateFormat, err)
	}
	*j = Of(on)
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
