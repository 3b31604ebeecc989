// Package commas formats integers with thousands separators.
package commas

import "strconv"

func Int(v int) string {
	return String(strconv.Itoa(v))
}

func Int64(v int64) string {
	return String(strconv.FormatInt(v, 10))
}

func Uint64(v uint64) string {
	return String(strconv.FormatUint(v, 10))
}

// String inserts separators into a string of digits with an optional sign.
func String(s string) string {
	if s == "" {
		return s
	}

	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign = s[:1]
		s = s[1:]
	}

	pos := len(s) - 3
	for pos > 0 {
		s = s[:pos] + "," + s[pos:]
		pos -= 3
	}

	return sign + s
}
