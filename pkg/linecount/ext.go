package linecount

import "os"

// DefaultExts are the extensions of files whose lines are counted.
// Matching is exact and case-sensitive, so "foo.PY" is skipped.
var DefaultExts = []string{".h", ".c", ".py", ".bat"}

// Ext returns the extension of the last path element of name, including
// the leading dot, or "" if there is none.
// Leading dots don't start an extension: ".c" and "..c" have no extension,
// "a..c" has ".c".
func Ext(name string) string {
	base := name
	for i := len(name) - 1; i >= 0; i-- {
		if os.IsPathSeparator(name[i]) {
			base = name[i+1:]
			break
		}
	}
	dot := -1
	for i := len(base) - 1; i >= 0; i-- {
		if base[i] == '.' {
			dot = i
			break
		}
	}
	if dot <= 0 {
		return ""
	}
	// "..c" => no extension, "x.c" => ".c"
	for i := 0; i < dot; i++ {
		if base[i] != '.' {
			return base[dot:]
		}
	}
	return ""
}

// IsKeptFile returns true if extension of name is one of exts.
func IsKeptFile(name string, exts []string) bool {
	ext := Ext(name)
	if ext == "" {
		return false
	}
	for _, s := range exts {
		if s == ext {
			return true
		}
	}
	return false
}
