// Package imageurl cleans up image paths whose file names carry characters browsers mangle.
package imageurl

import (
	"net/url"
	"regexp"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// Encode escapes every path segment that contains a space, "+", "(" or ")".
// Input that already holds %20, %2B or %2F is returned unchanged.
func Encode(src string) string {
	if src == "" {
		return src
	}
	if strings.Contains(src, "%20") || strings.Contains(src, "%2B") || strings.Contains(src, "%2F") {
		return src
	}

	parts := strings.Split(src, "/")
	for i, part := range parts {
		if i == 0 && (part == "" || strings.Contains(part, ":")) {
			continue
		}
		if strings.ContainsAny(part, " +()") {
			parts[i] = encodeComponent(part)
		}
	}
	return strings.Join(parts, "/")
}

// encodeComponent escapes like a URI component: spaces become %20 and "(" ")" stay literal.
func encodeComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	escaped = strings.ReplaceAll(escaped, "%28", "(")
	escaped = strings.ReplaceAll(escaped, "%29", ")")
	return escaped
}

// SanitizeFileName replaces characters that are awkward in file names
func SanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "+", "_plus_")
	name = strings.ReplaceAll(name, "(", "_")
	name = strings.ReplaceAll(name, ")", "_")
	name = whitespace.ReplaceAllString(name, "_")
	return strings.ReplaceAll(name, "&", "_and_")
}
