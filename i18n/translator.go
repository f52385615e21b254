package i18n

// Translator retrieves messages for Issue codes. data provides optional
// metadata to embed in the message (for example, "expected" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "invalid_type":
		return "invalid type"
	case "required":
		return "required attribute missing"
	case "unknown_field":
		return "unknown attribute"
	case "duplicate_key":
		return "duplicate key"
	case "invalid_enum":
		return "value not in controlled vocabulary"
	case "invalid_format":
		return "invalid format"
	case "out_of_range":
		return "value out of range"
	case "key_not_found":
		return "key not found"
	case "parse_error":
		return "parse error"
	case "schema_error":
		return "schema error"
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
