package extstat

import (
	"path/filepath"
	"strings"
)

// Ext returns the extension of the file name, including the leading dot.
//
// The result is empty when the name has no dot, when its only dot is the
// first character (".bashrc"), or when it ends in a dot ("file.").
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == "." || ext == filepath.Base(name) {
		return ""
	}

	return ext
}

// NormalizeExtensions splits a comma-separated list into canonical extensions.
// Tokens are trimmed, empty tokens dropped, a leading dot added where missing,
// and duplicates removed while keeping the first occurrence.
func NormalizeExtensions(list string) []string {
	seen := make(map[string]struct{})
	exts := make([]string, 0)

	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if !strings.HasPrefix(token, ".") {
			token = "." + token
		}

		if _, ok := seen[token]; ok {
			continue
		}

		seen[token] = struct{}{}
		exts = append(exts, token)
	}

	return exts
}
