// Package linecount counts significant source lines in .h, .c, .py and
// .bat files and prints per-file counts followed by a total.
package linecount

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	promptMsg        = "Press Enter to continue..."
	defaultCacheSize = 128
)

// Config describes a single run of the counter
type Config struct {
	// extensions of files to count, DefaultExts if empty
	Exts []string
	// directory to list when no names are given, also the directory
	// relative names are opened from. "." if empty
	Dir string

	Stdout io.Writer
	Stdin  io.Reader

	// if true, after printing the total we print promptMsg and wait
	// for a line from Stdin
	PromptBeforeExit bool

	// if not nil, gets diagnostic messages
	Verbose io.Writer
}

// FileCount is a number of significant lines in a file
type FileCount struct {
	Name  string
	Count int
}

// Totals is a result of a run
type Totals struct {
	Files []FileCount
	Total int
}

func (t *Totals) add(name string, n int) FileCount {
	fc := FileCount{Name: name, Count: n}
	t.Files = append(t.Files, fc)
	t.Total += n
	return fc
}

// WriteTo writes the report: a "name: count" line per file, a blank
// line and "Total: n"
func (t *Totals) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, fc := range t.Files {
		n, err := writeFileCount(w, fc)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := writeTotal(w, t.Total)
	total += int64(n)
	return total, err
}

func writeFileCount(w io.Writer, fc FileCount) (int, error) {
	return fmt.Fprintf(w, "%s: %d\n", fc.Name, fc.Count)
}

func writeTotal(w io.Writer, total int) (int, error) {
	return fmt.Fprintf(w, "\nTotal: %d\n", total)
}

type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Counter counts lines in files. Counts are cached by path, size and
// modification time so a file named twice is only read once.
type Counter struct {
	cfg   Config
	cache *lru.Cache[cacheKey, int]
}

// NewCounter creates a Counter for cfg, filling in defaults
func NewCounter(cfg Config) (*Counter, error) {
	if len(cfg.Exts) == 0 {
		cfg.Exts = DefaultExts
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	cache, err := lru.New[cacheKey, int](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Counter{
		cfg:   cfg,
		cache: cache,
	}, nil
}

func (c *Counter) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.cfg.Dir, name)
}

func (c *Counter) countFile(name string) (int, error) {
	path := c.path(name)
	st, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	key := cacheKey{
		path:    path,
		size:    st.Size(),
		modTime: st.ModTime().UnixNano(),
	}
	if n, ok := c.cache.Get(key); ok {
		c.logVerbose("countFile: '%s' from cache\n", name)
		return n, nil
	}
	n, err := CountFile(path)
	if err != nil {
		return 0, err
	}
	c.cache.Add(key, n)
	return n, nil
}

// Run counts lines in files named by args (or all files in cfg.Dir if
// args is empty) and prints the report to cfg.Stdout as it goes.
// The first error stops the run. Totals so far are returned with it.
func (c *Counter) Run(args []string) (*Totals, error) {
	names, err := ResolveNamesInDir(c.cfg.Dir, args)
	if err != nil {
		return nil, fmt.Errorf("Run: listing '%s' failed with '%w'", c.cfg.Dir, err)
	}
	w := c.cfg.Stdout
	totals := &Totals{}
	for _, name := range names {
		if !IsKeptFile(name, c.cfg.Exts) {
			c.logVerbose("Run: skipping '%s'\n", name)
			continue
		}
		n, err := c.countFile(name)
		if err != nil {
			return totals, err
		}
		fc := totals.add(name, n)
		if _, err = writeFileCount(w, fc); err != nil {
			return totals, err
		}
	}
	if _, err = writeTotal(w, totals.Total); err != nil {
		return totals, err
	}
	if c.cfg.PromptBeforeExit {
		if err = c.waitForEnter(); err != nil {
			return totals, err
		}
	}
	return totals, nil
}

func (c *Counter) waitForEnter() error {
	if _, err := fmt.Fprintln(c.cfg.Stdout, promptMsg); err != nil {
		return err
	}
	if c.cfg.Stdin == nil {
		return nil
	}
	line, err := bufio.NewReader(c.cfg.Stdin).ReadString('\n')
	if err == io.EOF {
		// a last line without '\n' is still an answer
		if len(line) > 0 {
			return nil
		}
		return fmt.Errorf("waitForEnter: stdin closed before a line was read: %w", err)
	}
	return err
}
