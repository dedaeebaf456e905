package linecount

import "fmt"

func (c *Counter) logVerbose(format string, args ...interface{}) {
	if c.cfg.Verbose == nil {
		return
	}
	_, _ = fmt.Fprintf(c.cfg.Verbose, format, args...)
}
