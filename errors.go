package paramval

import (
	"errors"
	"fmt"
	"strings"
)

// Stable issue codes carried on every Issue.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeInstanceOf   = "instance_of"
	CodeIndexedArray = "indexed_array"
	CodeInvalidEnum  = "invalid_enum"
	CodePattern      = "pattern"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Bracketed traversal path (for example: [foo][bar]).
	Code    string // One of the codes listed above.
	Message string // Full human-readable message, path included.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Message)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
