// utils/file.go
package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and parents) if it doesn't exist
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, os.ModePerm)
}

// WriteFile copies r into destPath, replacing any existing file. The write
// is not atomic.
func WriteFile(r io.Reader, destPath string) error {
	// ✅ Ensure the directory for the destination file exists
	if err := EnsureDir(filepath.Dir(destPath)); err != nil {
		return err
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// ExtensionOr returns the text after the last "." in filename, or fallback
// when there is none or it is empty. "portrait.jpg" → "jpg".
func ExtensionOr(filename, fallback string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return fallback
	}
	return filename[i+1:]
}
