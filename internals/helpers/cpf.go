package helper

import "strings"

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything that does not
// hold exactly 11 digits is returned untouched (or "-" when empty).
func FormatCPF(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "-"
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 11 {
		return raw
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}
