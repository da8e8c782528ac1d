package utils

import (
	"net/url"
	"strings"
)

// IsRelativePath reports whether path carries neither a scheme nor a host and
// can safely be appended to a base URL.
func IsRelativePath(path string) bool {
	if path == "" || strings.HasPrefix(path, "//") {
		return false
	}
	parsed, err := url.Parse(path)
	if err != nil {
		return false
	}
	return parsed.Scheme == "" && parsed.Host == ""
}

// JoinURL concatenates a base URL and a relative path with exactly one slash
// between them. The query string of path is preserved.
func JoinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
