package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check pairs a validation tag with the message reported when it fails.
// "required" is handled by the engine itself (fails on null and empty string,
// but not on numeric zero); every other tag is delegated to
// go-playground/validator.
type Check struct {
	Tag     string
	Message string
}

// Field is an ordered list of checks for one payload key. An Optional field is
// skipped entirely when its key is absent from the payload (partial update
// semantics); once the key is present, all checks apply as usual.
type Field struct {
	Name     string
	Optional bool
	Checks   []Check
}

// Validate runs each field's checks in declaration order against the raw
// request payload and returns a field -> message map holding the first failing
// check per field. Independent across fields, bail on first failure per field.
// String values are trimmed before any check. An empty map means valid.
func Validate(payload map[string]interface{}, fields []Field) map[string]string {
	errs := map[string]string{}

	for _, field := range fields {
		value, present := payload[field.Name]
		if !present && field.Optional {
			continue
		}
		if s, ok := value.(string); ok {
			value = strings.TrimSpace(s)
		}

		for _, check := range field.Checks {
			if !passes(value, check.Tag) {
				errs[field.Name] = check.Message
				break
			}
		}
	}

	return errs
}

func passes(value interface{}, tag string) bool {
	if tag == "required" {
		if value == nil {
			return false
		}
		if s, ok := value.(string); ok && s == "" {
			return false
		}
		return true
	}
	// min, max and email are string rules here. The library would read min/max
	// against a number as value bounds instead of length bounds, so non-string
	// values fail these checks outright.
	if tag == "email" || strings.HasPrefix(tag, "min=") || strings.HasPrefix(tag, "max=") {
		s, ok := value.(string)
		if !ok {
			return false
		}
		return validate.Var(s, tag) == nil
	}
	// Only scalar values can satisfy the remaining checks; objects, arrays
	// and booleans fail outright instead of panicking inside the library.
	switch value.(type) {
	case string, float64, int, int64:
		return validate.Var(value, tag) == nil
	default:
		return false
	}
}
