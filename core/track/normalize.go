package track

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizationError reports a path that could not be reduced to a
// comparable key.
type NormalizationError struct {
	// Path is the raw input path.
	Path string
	// Reason describes why normalization failed.
	Reason string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalize path %q: %s", e.Path, e.Reason)
}

// DecodePath converts a byte-string path, as stored in the beets items
// table, to text. Beets stores paths as raw bytes; rekordbox locations
// are already text.
func DecodePath(raw []byte) string {
	return string(raw)
}

// NormalizeKey canonicalizes a raw file path into the key used to decide
// whether two records describe the same file. The transform is:
//
//   - Unicode NFD normalization, so composed and decomposed forms of the
//     same name compare equal (macOS writes decomposed names; tags often
//     carry composed ones).
//   - Lowercase fold. The target filesystem is assumed case-insensitive;
//     on a case-sensitive filesystem two paths differing only in case
//     would collide here. Known limitation.
//   - For OriginExport, a missing leading separator is re-prepended:
//     rekordbox strips it when writing Location attributes.
//
// The result must be non-empty and contain at least one path separator;
// anything else is a NormalizationError. NormalizeKey is pure and
// idempotent: feeding a key back in returns it unchanged.
func NormalizeKey(rawPath string, origin Origin) (string, error) {
	if rawPath == "" {
		return "", &NormalizationError{Path: rawPath, Reason: "empty path"}
	}

	key := strings.ToLower(norm.NFD.String(rawPath))

	if origin == OriginExport && !strings.HasPrefix(key, "/") {
		key = "/" + key
	}

	if !strings.Contains(key, "/") {
		return "", &NormalizationError{Path: rawPath, Reason: "no path separator"}
	}
	return key, nil
}

// ExportLocation re-applies the rekordbox Location convention to a raw
// path: the leading separator is stripped, everything else is untouched.
func ExportLocation(rawPath string) string {
	return strings.TrimPrefix(rawPath, "/")
}
