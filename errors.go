package mtschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeUnknownField  = "unknown_field"
	CodeDuplicateKey  = "duplicate_key"
	CodeInvalidEnum   = "invalid_enum"
	CodeInvalidFormat = "invalid_format"
	CodeOutOfRange    = "out_of_range"
	CodeKeyNotFound   = "key_not_found"
	CodeParseError    = "parse_error"
	CodeSchemaError   = "schema_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Dotted attribute path (for example: time_period.start_date).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected formats, allowed values.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"min":0, "max":5, "got":6})
	// for message rendering and observability.
	Params map[string]any
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
		it := iss[i]
		// e.g. invalid_enum at orientation.method
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
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

// prefixIssues rewrites child issue paths under a parent dotted prefix.
func prefixIssues(prefix string, iss Issues) Issues {
	if prefix == "" {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + "." + it.Path
		}
		out[i] = it
	}
	return out
}

// DuplicateKeyError reports an attempted insert of an already-present key into
// a ListDict. It is a recoverable condition, not a validation failure.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("mtschema: duplicate key %q", e.Key)
}

// KeyNotFoundError reports a lookup or removal of a key absent from a ListDict.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("mtschema: key %q not found", e.Key)
}

// SchemaError reports a schema-definition mistake (duplicate field paths,
// empty vocabularies, bad mounts). These are programmer errors; MustBuild
// panics on them.
type SchemaError struct {
	Schema string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Schema == "" {
		return "mtschema: " + e.Reason
	}
	return fmt.Sprintf("mtschema: schema %q: %s", e.Schema, e.Reason)
}

// UnknownFieldError reports a Resolve call for a dotted path the schema does
// not declare.
type UnknownFieldError struct {
	Schema string
	Path   string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("mtschema: schema %q has no field %q", e.Schema, e.Path)
}
