package prformat

import "strings"

// Body is a pull request description split into prose and trailers
type Body struct {
	Normalized string
	Prose      string
	Trailers   string
}

// Reassemble joins reflowed prose and the untouched trailer block
func Reassemble(prose, trailers string) string {
	joined := strings.Join([]string{
		strings.TrimSpace(prose),
		"",
		trailers,
	}, "\n")
	return strings.TrimSpace(joined)
}
