// Package upload handles validation and storage of uploaded files.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// allowedExtensions is the fixed allow-list for uploads: image formats
// plus pdf. Not configurable.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
}

// Allowed reports whether the filename carries an allow-listed extension.
func Allowed(filename string) bool {
	return allowedExtensions[Ext(filename)]
}

// Ext returns the lower-cased extension of filename, including the dot.
func Ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// SanitizeName returns a storage-safe version of the original filename:
// the base name is slugified and the lower-cased extension is kept.
// Path separators and any parent-directory components are discarded.
func SanitizeName(filename string) string {
	base := filepath.Base(filepath.ToSlash(filename))
	ext := Ext(base)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	safe := slug.Make(name)
	if safe == "" {
		safe = "file"
	}

	return safe + ext
}

// Save writes the multipart file to dir under the given filename and
// returns the stored path with forward slashes, suitable for URLs.
// An existing file at the destination is overwritten.
func Save(fh *multipart.FileHeader, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint: mnd
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dstPath := filepath.Join(dir, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(dstPath), nil
}
