package utils

import "time"

// ClientDateLayout is the expiration date format exchanged with clients and
// hardware units. Dates are stored as plain DATE values internally.
const ClientDateLayout = "01/02/2006"

func ParseClientDate(s string) (time.Time, error) {
	return time.Parse(ClientDateLayout, s)
}

func FormatClientDate(t time.Time) string {
	return t.Format(ClientDateLayout)
}
