// Package filex contains small file helpers used by receipt uploads and the
// local settings store.
package filex

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EnsureDir creates dir (and parents) if missing and returns it.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Ext returns the lower-cased extension of name without the leading dot,
// e.g. "fatura.PDF" -> "pdf". Empty when name has no extension.
func Ext(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// AllowedType reports whether name's extension is in allowed.
func AllowedType(name string, allowed []string) bool {
	ext := Ext(name)
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// WithinSize reports whether size fits into maxMB megabytes.
func WithinSize(size int64, maxMB int) bool {
	return size <= int64(maxMB)*1024*1024
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatSize renders a byte count for display: "0 Bytes", "1.5 KB", "2 MB".
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
