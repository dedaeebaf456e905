package linecount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// only ASCII whitespace is trimmed, bytes like "\u00a0" or "\x1c" are
// content
const asciiSpace = " \t\n\r\v\f"

// IsSignificant returns true if a line should be counted. After trimming
// whitespace the line must be non-empty and not start with "/*" or "* ".
// A lone "*/" is counted.
func IsSignificant(line string) bool {
	s := strings.Trim(line, asciiSpace)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/*") || strings.HasPrefix(s, "* ") {
		return false
	}
	return true
}

// CountLines returns the number of significant lines in r.
// Lines are split on '\n' and can be of any length.
func CountLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 && IsSignificant(line) {
			n++
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// CountFile returns the number of significant lines in file at path.
// path must be a readable regular file; a directory is an error.
func CountFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if st.IsDir() {
		return 0, fmt.Errorf("CountFile: '%s' is a directory", path)
	}
	n, err := CountLines(f)
	if err != nil {
		return 0, fmt.Errorf("CountFile: reading '%s' failed with '%w'", path, err)
	}
	return n, nil
}
