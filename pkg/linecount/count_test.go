package linecount

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSignificant(t *testing.T) {
	significant := []string{
		"int x;",
		"  return 0;\n",
		"*/",
		"  */  ",
		"*x = 1;",
		"// comment",
		"# comment",
		"/ * not a comment start",
		"**",
		// trimmed to "*"
		"* ",
		// not ASCII whitespace
		"\u00a0",
		"\u0085",
		"\u2003",
		"\x1c",
		" \x1f ",
	}
	for _, s := range significant {
		assert.True(t, IsSignificant(s), "line: %q", s)
	}
	insignificant := []string{
		"",
		"\n",
		"   \t  \r\n",
		" \v\f\t",
		"/* comment */",
		"   /** doc",
		"/*",
		" * continuation",
		"\t* foo\n",
	}
	for _, s := range insignificant {
		assert.False(t, IsSignificant(s), "line: %q", s)
	}
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		in  string
		exp int
	}{
		{"", 0},
		{"   \n\t\n\n", 0},
		{"/* a\n * b\n * c\n", 0},
		{"/* a\n * b\n */\n", 1},
		{"int a;\nint b;", 2},
		{"int a;\r\nint b;\r\n", 2},
		{"#include <stdio.h>\n\nint main() {\n    return 0;\n}\n", 4},
		{"a\n\n\nb\n", 2},
		{"\u00a0\n\x1c\n \u2003 \n", 3},
		// '\r' alone doesn't end a line
		{"a\rb\n", 1},
		{"\r\r\n\r", 0},
		{"/* x\r * y\n", 0},
	}
	for _, tc := range tests {
		got, err := CountLines(strings.NewReader(tc.in))
		assert.NoError(t, err)
		assert.Equal(t, tc.exp, got, "input: %q", tc.in)
	}
}

func TestCountLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := CountLines(strings.NewReader(long + "\n" + long))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestCountFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.c")
	err := os.WriteFile(path, []byte("/*\n * license\n */\nint a;\n"), 0644)
	require.NoError(t, err)

	n, err := CountFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := CountFile(filepath.Join(dir, "missing.c"))
	assert.True(t, os.IsNotExist(err))

	sub := filepath.Join(dir, "sub.c")
	require.NoError(t, os.Mkdir(sub, 0755))
	_, err = CountFile(sub)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
