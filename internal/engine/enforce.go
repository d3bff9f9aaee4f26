package engine

import (
	"strconv"
	"strings"
)

// Policy says what the enforcer does when an object repeats a member name.
type Policy int

const (
	Allow  Policy = iota // last value wins, nothing reported
	Report               // last value wins, a finding is reported
	Reject               // decoding stops at the repeated name
)

const (
	codeParse     = "parse_error"
	codeDuplicate = "duplicate_key"
	codeTruncated = "truncated"
)

// Finding is an input-level problem noticed while tokens stream through an
// enforcer. A *Finding is also the error that stops the decode.
type Finding struct {
	Code    string
	Pointer string // JSON Pointer, "/" for the document root
	Message string
}

func (f *Finding) Error() string { return f.Message }

// Limits configures Enforce. Zero values disable the corresponding check.
type Limits struct {
	Duplicates Policy
	MaxDepth   int
	MaxBytes   int64
	// Report, when set, receives every finding, including the fatal one.
	Report func(Finding)
	// FailFast turns reported duplicates into errors.
	FailFast bool
}

// Enforce wraps src so that repeated member names, nesting depth and consumed
// bytes are checked while the document is decoded.
func Enforce(src TokenSource, lim Limits) TokenSource {
	return &enforcer{src: src, lim: lim}
}

// frame is one open container.
type frame struct {
	ptr    string
	object bool
	seen   map[string]struct{}
	member string // name whose value is being read
	inside bool   // member is set and its value has not finished yet
	next   int    // next array index
}

type enforcer struct {
	src    TokenSource
	lim    Limits
	frames []frame
}

func (e *enforcer) Location() int64 { return e.src.Location() }

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.src.NextToken()
	if err != nil {
		return Token{}, err
	}
	ptr := e.pointer(tok)

	switch tok.Kind {
	case KindBeginObject:
		e.open(ptr, true)
		if err := e.checkDepth(ptr); err != nil {
			return Token{}, err
		}
	case KindBeginArray:
		e.open(ptr, false)
		if err := e.checkDepth(ptr); err != nil {
			return Token{}, err
		}
	case KindEndObject, KindEndArray:
		if n := len(e.frames); n > 0 {
			e.frames = e.frames[:n-1]
		}
		e.valueDone()
	case KindKey:
		if err := e.member(tok.String, ptr); err != nil {
			return Token{}, err
		}
	default:
		e.valueDone()
	}

	if e.lim.MaxBytes > 0 && e.src.Location() > e.lim.MaxBytes {
		return Token{}, e.emit(codeTruncated, ptr, "max bytes exceeded")
	}
	return tok, nil
}

func (e *enforcer) top() *frame {
	if len(e.frames) == 0 {
		return nil
	}
	return &e.frames[len(e.frames)-1]
}

func (e *enforcer) open(ptr string, object bool) {
	f := frame{ptr: ptr, object: object}
	if object {
		f.seen = map[string]struct{}{}
	}
	e.frames = append(e.frames, f)
}

func (e *enforcer) checkDepth(ptr string) error {
	if e.lim.MaxDepth > 0 && len(e.frames) > e.lim.MaxDepth {
		return e.emit(codeParse, ptr, "max depth exceeded")
	}
	return nil
}

// valueDone marks the current member of the enclosing object as complete.
func (e *enforcer) valueDone() {
	if top := e.top(); top != nil && top.object {
		top.member, top.inside = "", false
	}
}

func (e *enforcer) member(name, ptr string) error {
	top := e.top()
	if top == nil || !top.object || top.inside {
		return nil
	}
	if _, dup := top.seen[name]; dup && e.lim.Duplicates != Allow {
		f := e.emit(codeDuplicate, ptr, "key '"+name+"' duplicated")
		if e.lim.Duplicates == Reject || e.lim.FailFast {
			return f
		}
	}
	top.seen[name] = struct{}{}
	top.member, top.inside = name, true
	return nil
}

// pointer returns the location of tok. Array elements consume an index.
func (e *enforcer) pointer(tok Token) string {
	top := e.top()
	if top == nil {
		return ""
	}
	switch tok.Kind {
	case KindKey:
		return appendPointer(top.ptr, tok.String)
	case KindEndObject, KindEndArray:
		return top.ptr
	}
	if !top.object {
		i := top.next
		top.next++
		return appendPointer(top.ptr, strconv.Itoa(i))
	}
	if top.inside {
		return appendPointer(top.ptr, top.member)
	}
	return top.ptr
}

func (e *enforcer) emit(code, ptr, msg string) *Finding {
	f := &Finding{Code: code, Pointer: rootPointer(ptr), Message: msg}
	if e.lim.Report != nil {
		e.lim.Report(*f)
	}
	return f
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func appendPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}

func rootPointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
