package vfs

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

// binarySample is how much of a file IsBinary inspects.
const binarySample = 8192

// Decode returns content as UTF-8 text with any leading UTF-8 byte order
// mark removed.
func Decode(content []byte) ([]byte, error) {
	if !HasBOM(content) {
		return content, nil
	}
	return unicode.UTF8BOM.NewDecoder().Bytes(content)
}

// HasBOM reports whether content starts with a UTF-8 byte order mark.
func HasBOM(content []byte) bool {
	return bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF})
}

// IsBinary attempts to detect if content is binary (not text).
// Uses heuristics: presence of null bytes, high ratio of control characters.
func IsBinary(content []byte) bool {
	if len(content) == 0 {
		return false
	}

	sample := content[:min(len(content), binarySample)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}

	nonText := 0
	for _, b := range sample {
		if b < 32 && b != '\t' && b != '\n' && b != '\r' && b != '\f' && b != 0x1b {
			nonText++
		}
	}
	return float64(nonText)/float64(len(sample)) > 0.1
}
