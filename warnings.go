package marktree

import (
	"fmt"
	"strings"
)

// WarningCode identifies a kind of non-fatal issue.
type WarningCode int

const (
	// WarnPlainText means the input has no markdown block syntax and was
	// parsed as paragraphs of plain text.
	WarnPlainText WarningCode = iota + 1
	// WarnUnrecognizedExtension means the file extension is not a markdown
	// or text extension and the format was detected from the content.
	WarnUnrecognizedExtension
	// WarnEmptyDocument means the input produced no blocks.
	WarnEmptyDocument
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarnPlainText:
		return "plain-text"
	case WarnUnrecognizedExtension:
		return "unrecognized-extension"
	case WarnEmptyDocument:
		return "empty-document"
	default:
		return "unknown"
	}
}

// Warning describes an issue where parsing succeeded but the result may not
// be what the caller expects.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single line for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
