package jsonls

import "regexp"

// formats.go implements the "format" validators: uri, uri-reference,
// color-hex, date-time, date, time, and email. Every pattern below is the
// bit-exact regex for its format rather than a calendar-aware or
// RFC-library-based reimplementation, so accept/reject behavior matches the
// literal pattern even where that diverges from real-world validity (e.g.
// the date pattern accepts "2024-02-31": it has no notion of days-per-month).

var formatValidators = map[string]func(string) bool{
	"uri":           isFormatURI,
	"uri-reference": isFormatURIReference,
	"color-hex":     isColorHex,
	"date-time":     isDateTime,
	"date":          isFormatDate,
	"time":          isFormatTime,
	"email":         isFormatEmail,
}

var colorHexPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3,4}|([0-9A-Fa-f]{2}){3,4})$`)

func isColorHex(s string) bool {
	return colorHexPattern.MatchString(s)
}

var dateTimePattern = regexp.MustCompile(`(?i)^(\d{4})-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])T([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9]|60)(\.[0-9]+)?(Z|[+-]([01][0-9]|2[0-3]):([0-5][0-9]))$`)

func isDateTime(s string) bool {
	return dateTimePattern.MatchString(s)
}

var datePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)

func isFormatDate(s string) bool {
	return datePattern.MatchString(s)
}

var timePattern = regexp.MustCompile(`(?i)^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9]|60)(\.[0-9]+)?(Z|[+-]([01][0-9]|2[0-3]):([0-5][0-9]))$`)

func isFormatTime(s string) bool {
	return timePattern.MatchString(s)
}

var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

func isFormatEmail(s string) bool {
	return emailPattern.MatchString(s)
}

var uriPattern = regexp.MustCompile(`^(([^:/?#]+?):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?`)

// isFormatURI requires the scheme group (group 2) to be non-empty; the
// pattern otherwise matches nearly any string, since every other group is
// optional.
func isFormatURI(s string) bool {
	m := uriPattern.FindStringSubmatch(s)
	return m != nil && m[2] != ""
}

// isFormatURIReference accepts anything the underlying URI grammar can
// parse into its component groups, scheme or not.
func isFormatURIReference(s string) bool {
	return uriPattern.MatchString(s)
}
