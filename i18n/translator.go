package i18n

// Translator renders messages for issue codes. data carries the pieces the
// message embeds (for example "path", "type", or "bound").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	path := data["path"]
	switch code {
	case "instance_of":
		return path + " must be an instance of " + data["constraint"]
	case "indexed_array":
		return path + " must be an array of properties. Got a numerically indexed array."
	case "unknown_key":
		return path + "[" + data["key"] + "] is not an allowed property"
	case "required":
		msg := path + " is required"
		if t := data["type"]; t != "" {
			msg = path + " is a required " + t
		}
		if d := data["description"]; d != "" {
			msg += ": " + d
		}
		return msg
	case "invalid_type":
		return path + " must be of type " + data["type"]
	case "invalid_enum":
		return path + " must be one of " + data["values"]
	case "pattern":
		return path + " must match the following regular expression: " + data["pattern"]
	case "too_small":
		switch data["kind"] {
		case "string":
			return path + " length must be greater than or equal to " + data["bound"]
		case "array":
			return path + " must contain " + data["bound"] + " or more elements"
		}
		return path + " must be greater than or equal to " + data["bound"]
	case "too_big":
		switch data["kind"] {
		case "string":
			return path + " length must be less than or equal to " + data["bound"]
		case "array":
			return path + " must contain " + data["bound"] + " or fewer elements"
		}
		return path + " must be less than or equal to " + data["bound"]
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation. Passing nil restores
// the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
