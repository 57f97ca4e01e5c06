package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles walks RootDir and returns every file matching at least one
// Include pattern (or all files, if Include is empty) and no Exclude
// pattern, grounded on the teacher's scanner.Config include/exclude glob
// pair but using doublestar for proper "**" recursive matching.
func (c *Config) ResolveFiles() ([]string, error) {
	root := c.RootDir
	if root == "" {
		root = "."
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if len(c.Include) > 0 && !matchesAny(c.Include, rel) {
			return nil
		}
		if matchesAny(c.Exclude, rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving files under %s: %w", root, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files matched under %s", root)
	}
	return files, nil
}

func matchesAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, _ := doublestar.Match(pat, path); ok {
			return true
		}
		if strings.HasSuffix(pat, "/**") && strings.HasPrefix(path, strings.TrimSuffix(pat, "/**")+"/") {
			return true
		}
	}
	return false
}
