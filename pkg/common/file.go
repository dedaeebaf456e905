package common

import (
	"os"
	"strings"
)

const asciiSpace = " \t\n\r\v\f"

// ReadTextFile returns content of a file with leading and trailing
// ASCII whitespace removed and all '\r' characters deleted, so that
// line endings are always '\n'
func ReadTextFile(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	s := strings.Trim(string(d), asciiSpace)
	return strings.Replace(s, "\r", "", -1), nil
}
