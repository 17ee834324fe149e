package utils

import (
	"regexp"
)

// ANSI escape code cleaner
var ANSI_CLEANER = regexp.MustCompile(`(\x9B|\x1B\[)[0-?]*[ -\/]*[@-~]`)

// StripAnsi removes all ANSI escape codes from s, so that colored log output
// can be written to plain text files.
func StripAnsi(s string) string {
	return ANSI_CLEANER.ReplaceAllString(s, "")
}
