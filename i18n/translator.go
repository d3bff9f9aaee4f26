package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalog = map[string]map[string]string{
	"en": {
		"invalid_type":          "invalid type",
		"invalid_format":        "invalid format",
		"required":              "required property missing",
		"unexpected_null":       "null is not allowed",
		"invalid_enum":          "value is not one of the allowed values",
		"unknown_variant":       "value matches no union variant",
		"discriminator_missing": "discriminator property missing",
		"unknown_key":           "unknown key",
		"duplicate_key":         "duplicate key",
		"too_small":             "too small",
		"too_big":               "too big",
		"too_short":             "too short",
		"too_long":              "too long",
		"pattern":               "does not match pattern",
		"too_deep":              "schema nesting too deep",
		"parse_error":           "parse error",
		"truncated":             "truncated",
	},
	"ja": {
		"invalid_type":          "型が不正です",
		"invalid_format":        "形式が不正です",
		"required":              "必須プロパティが不足しています",
		"unexpected_null":       "null は許可されていません",
		"invalid_enum":          "許可された値ではありません",
		"unknown_variant":       "どのバリアントにも一致しません",
		"discriminator_missing": "判別プロパティが不足しています",
		"unknown_key":           "未知のキーです",
		"duplicate_key":         "キーが重複しています",
		"too_small":             "小さすぎます",
		"too_big":               "大きすぎます",
		"too_short":             "短すぎます",
		"too_long":              "長すぎます",
		"pattern":               "パターンに一致しません",
		"too_deep":              "スキーマの入れ子が深すぎます",
		"parse_error":           "解析エラー",
		"truncated":             "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := catalog[t.lang][code]
	if !ok {
		return code
	}
	if t.lang == "en" {
		// a few messages read better with their parameter attached
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				msg = "expected " + exp
				if got := data["got"]; got != "" {
					msg += ", got " + got
				}
			}
		case "invalid_format":
			if f := data["format"]; f != "" {
				msg = "invalid " + f
			}
		case "invalid_enum":
			if v := data["value"]; v != "" {
				msg = "unknown value '" + v + "'"
			}
		}
	}
	return msg
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
