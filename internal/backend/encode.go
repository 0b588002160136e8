package backend

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// EncodeFile reads a file fully into memory and returns its
// transport-safe base64 encoding.
func EncodeFile(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// StripDataURL removes exactly one data-URL media-type prefix
// ("data:image/jpeg;base64,") from an already-encoded payload. Input
// without a prefix is returned unchanged. Browser clients that encode
// via a data URL send the prefix; the backend expects bare base64.
func StripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	idx := strings.Index(s, ",")
	if idx < 0 {
		return s
	}
	return s[idx+1:]
}
