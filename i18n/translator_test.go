package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", nil); msg == "required" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("required", nil); msg == "required property missing" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_ParamsAndUnknownCode(t *testing.T) {
	got := T("invalid_type", map[string]string{"expected": "integer", "got": "string"})
	if got != "expected integer, got string" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := T("invalid_enum", map[string]string{"value": "BEARER"}); got != "unknown value 'BEARER'" {
		t.Fatalf("unexpected message: %q", got)
	}
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("unknown codes should echo the code, got %q", got)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixed("x"))
	if T("required", nil) != "x" {
		t.Fatalf("custom translator not used")
	}
	SetTranslator(nil)
	if T("required", nil) != "required property missing" {
		t.Fatalf("nil translator should restore the default")
	}
}
