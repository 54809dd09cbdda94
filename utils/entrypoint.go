// utils/entrypoint.go
package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Editor bundle entry files in order of preference, matched case-insensitively.
var entryCandidates = []string{
	"index.html",
	"index.htm",
	"main.html",
}

func entryRank(name string) int {
	name = strings.ToLower(name)
	for i, candidate := range entryCandidates {
		if name == candidate {
			return i
		}
	}
	return -1
}

// FindEntryPoint returns the path, relative to root and with forward slashes,
// of the bundle's entry file. A file at the top level wins over nested ones;
// below that the first match in lexical walk order is used.
func FindEntryPoint(root string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", err
	}
	best, bestRank := "", len(entryCandidates)
	for _, e := range entries {
		if r := entryRank(e.Name()); !e.IsDir() && r >= 0 && r < bestRank {
			best, bestRank = e.Name(), r
		}
	}
	if best != "" {
		return best, nil
	}

	var found string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || entryRank(d.Name()) < 0 {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = filepath.ToSlash(rel)
		return filepath.SkipAll
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", os.ErrNotExist
	}
	return found, nil
}
