package main

import (
	"github.com/kjk/u"
)

// must panics if err is not nil. Optional args are a format string
// and its arguments, prepended to the error message.
func must(err error, args ...interface{}) {
	if err == nil {
		return
	}
	s := u.FmtArgs(args...)
	if s == "" {
		panic(err)
	}
	panic(s + " err: " + err.Error())
}
