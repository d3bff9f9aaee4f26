package camara

// UnknownPolicy controls how unrecognized object keys are handled.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Preserve unknown keys in the record's Extras.
	UnknownStrip                            // Drop unknown keys.
	UnknownStrict                           // Reject unknown keys with an error.
)

// Severity expresses the severity level for input-level findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys in raw JSON input.
type Strictness struct {
	OnDuplicateKey Severity // Warn or Error (duplicate JSON keys).
}

// DefaultMaxDepth bounds recursive (lazy) schema descent when CoerceOpt.MaxDepth is zero.
const DefaultMaxDepth = 64

// CoerceOpt is the per-call coercion state shared by every coercer in one
// call tree. It travels in the context (see WithCoerceOpt).
type CoerceOpt struct {
	// ExactTypes disables narrowing conversions such as "42" -> 42.
	ExactTypes bool
	// LenientEnums turns unknown enum values into passthrough values instead
	// of invalid_enum issues.
	LenientEnums bool
	// FailFast stops model coercion at the first failing field.
	FailFast bool
	// MaxDepth bounds descent through recursive schemas. Zero means DefaultMaxDepth.
	MaxDepth int
}

// JSONOpt bundles options for the raw JSON entry points.
type JSONOpt struct {
	Coerce     CoerceOpt
	Strictness Strictness
	MaxDepth   int   // nesting limit of the raw document (0: unlimited)
	MaxBytes   int64 // size limit of the raw document (0: unlimited)
}
