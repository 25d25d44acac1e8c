package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentID validates a document identifier used as a storage key.
// It rejects ids that could be used for path traversal when a file-backed
// store maps ids to filenames.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocumentID, "document id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidDocumentID, "document id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocumentID, "document id contains control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidDocumentID, "document id contains invalid sequence: %q", pattern)
		}
	}

	return nil
}
