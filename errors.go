package camara

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeInvalidFormat        = "invalid_format"
	CodeRequired             = "required"
	CodeUnexpectedNull       = "unexpected_null"
	CodeInvalidEnum          = "invalid_enum"
	CodeUnknownVariant       = "unknown_variant"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeUnknownKey           = "unknown_key"
	CodeDuplicateKey         = "duplicate_key"
	CodeTooSmall             = "too_small"
	CodeTooBig               = "too_big"
	CodeTooShort             = "too_short"
	CodeTooLong              = "too_long"
	CodePattern              = "pattern"
	CodeTooDeep              = "too_deep"
	CodeParseError           = "parse_error"
	CodeTruncated            = "truncated"
	// Object-level refinements (cross-field rules)
	CodeCustom = "custom"
)

// Issue represents a single coercion failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /ranges/0/from).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, format names, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"integer","got":"string"})
	// for i18n and programmatic inspection.
	Params map[string]any
	// Attempts lists, for unknown_variant issues, every union variant that was
	// tried together with the reason it was rejected.
	Attempts []Attempt
}

// Attempt records why one union variant did not match.
type Attempt struct {
	Variant string
	Issues  Issues
}

// Dotted renders the JSON Pointer path as a dotted path
// (/subscriptionDetail/device/ipv4Address/publicPort ->
// subscriptionDetail.device.ipv4Address.publicPort). List indexes are kept as
// plain segments. The root renders as an empty string.
func (it Issue) Dotted() string { return DottedPath(it.Path) }

// DottedPath converts a JSON Pointer into its dotted form, unescaping RFC 6901
// sequences.
func DottedPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	parts := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(strings.ReplaceAll(p, "~1", "/"), "~0", "~")
	}
	return strings.Join(parts, ".")
}

// Issues is a collection of coercion errors that implements error.
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
		// e.g. required at /credentialType
		fmt.Fprintf(b, "%s at %s", it.Code, normalizePath(it.Path))
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order, handy in tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
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

// HasCode reports whether err carries at least one issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// ErrNilSchema is returned by the free helpers when called with a nil schema.
var ErrNilSchema = errors.New("camara: nil schema")

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
