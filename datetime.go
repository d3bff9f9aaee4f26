package camara

import (
	"errors"
	"strings"
	"time"
)

// DateTime is a time.Time that remembers how its RFC 3339 text was written:
// the offset spelling ("Z" or "+00:00") and the fraction width. String
// reproduces the parsed input, so a coerce/dump round trip is lossless.
// Values built with NewDateTime render as time.RFC3339Nano.
type DateTime struct {
	time.Time
	layout string
}

// NewDateTime wraps t with the default RFC 3339 rendering.
func NewDateTime(t time.Time) DateTime { return DateTime{Time: t} }

var errDateTimeShape = errors.New("camara: not an RFC 3339 date-time")

// ParseDateTime parses an RFC 3339 date-time. The "T" separator and the "Z"
// designator may be lower case; they are written back upper case.
func ParseDateTime(s string) (DateTime, error) {
	norm := strings.ToUpper(s)
	if len(norm) < len("2006-01-02T15:04:05Z") ||
		norm[4] != '-' || norm[7] != '-' || norm[10] != 'T' || norm[13] != ':' || norm[16] != ':' {
		return DateTime{}, errDateTimeShape
	}
	t, err := time.Parse(time.RFC3339Nano, norm)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Time: t, layout: dateTimeLayout(norm)}, nil
}

// dateTimeLayout derives the layout that renders a value the way s was
// written. s must already have parsed.
func dateTimeLayout(s string) string {
	const base = "2006-01-02T15:04:05"
	layout := base
	rest := s[len(base):]
	if strings.HasPrefix(rest, ".") {
		n := 1
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		layout += "." + strings.Repeat("0", min(n-1, 9))
		rest = rest[n:]
	}
	if rest == "Z" {
		return layout + "Z07:00"
	}
	return layout + "-07:00"
}

// String renders d in RFC 3339, keeping the offset and fraction of the
// parsed input.
func (d DateTime) String() string {
	if d.layout == "" {
		return d.Time.Format(time.RFC3339Nano)
	}
	return d.Time.Format(d.layout)
}

// Equal reports whether d and o denote the same instant.
func (d DateTime) Equal(o DateTime) bool { return d.Time.Equal(o.Time) }

// MarshalJSON encodes d as its String form.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes an RFC 3339 string.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errDateTimeShape
	}
	v, err := ParseDateTime(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = v
	return nil
}
