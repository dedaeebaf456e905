package main

import (
	"io"
	"os"
	"runtime"

	"github.com/essentialbooks/linecount/pkg/linecount"
)

// on windows the console window closes when we exit so we wait for
// the user to read the output
func shouldPromptBeforeExit(goos string) bool {
	return goos == "windows"
}

func run(args []string, stdout io.Writer, stdin io.Reader, goos string) error {
	cfg := linecount.Config{
		Stdout:           stdout,
		Stdin:            stdin,
		PromptBeforeExit: shouldPromptBeforeExit(goos),
	}
	c, err := linecount.NewCounter(cfg)
	if err != nil {
		return err
	}
	_, err = c.Run(args)
	return err
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stdin, runtime.GOOS)
	must(err, "linecount failed")
}
