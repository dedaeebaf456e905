package linecount

import (
	"os"
)

// ResolveNames returns args if not empty. Otherwise it returns sorted
// names of all entries (files and directories) in current directory.
func ResolveNames(args []string) ([]string, error) {
	return ResolveNamesInDir(".", args)
}

// ResolveNamesInDir is like ResolveNames but lists dir instead of the
// current directory. Returned names are not joined with dir.
func ResolveNamesInDir(dir string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	// os.ReadDir returns entries sorted by name
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
