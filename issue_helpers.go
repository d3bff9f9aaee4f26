package camara

import (
	"strconv"
	"strings"

	"github.com/camara-go/camara/i18n"
)

// NewIssue creates a root-level Issue with a translated message. Nested
// coercers report at "/" and let their parents rebase the path.
func NewIssue(code string, params map[string]any) Issue {
	return Issue{Path: "/", Code: code, Message: i18n.T(code, stringParams(params)), Params: params}
}

// Fail wraps a single root-level issue as an error.
func Fail(code string, params map[string]any) error {
	return Issues{NewIssue(code, params)}
}

// TypeMismatch reports a wire value whose runtime kind does not fit.
func TypeMismatch(expected string, got any) error {
	return Fail(CodeInvalidType, map[string]any{"expected": expected, "got": KindOf(got)})
}

// RebaseIssues prefixes every issue path in err with the JSON Pointer token
// seg. Errors that are not Issues become a parse_error issue at seg.
func RebaseIssues(seg string, err error) Issues {
	if err == nil {
		return nil
	}
	base := "/" + EscapePointerToken(seg)
	child, ok := AsIssues(err)
	if !ok {
		return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		it.Path = joinPointer(base, it.Path)
		out = append(out, it)
	}
	return out
}

// RebaseIndex is RebaseIssues for list positions.
func RebaseIndex(i int, err error) Issues { return RebaseIssues(strconv.Itoa(i), err) }

func joinPointer(base, p string) string {
	switch {
	case p == "" || p == "/":
		return base
	case p[0] == '/':
		return base + p
	default:
		return base + "/" + p
	}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointerToken escapes '~' and '/' per RFC 6901.
func EscapePointerToken(s string) string { return pointerEscaper.Replace(s) }

// KindOf names the JSON kind of a decoded wire value for error messages.
func KindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	}
	if _, ok := v.(interface{ Float64() (float64, error) }); ok {
		return "number"
	}
	return "unknown"
}

func stringParams(params map[string]any) map[string]string {
	if len(params) == 0 {
		return nil
	}
	out := make(map[string]string, len(params))
	for k, v := range params {
		switch t := v.(type) {
		case string:
			out[k] = t
		case []string:
			out[k] = strings.Join(t, ", ")
		case int:
			out[k] = strconv.Itoa(t)
		case float64:
			out[k] = strconv.FormatFloat(t, 'g', -1, 64)
		}
	}
	return out
}
