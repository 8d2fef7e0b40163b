package css

import "strings"

// Declaration is a single "property: value" pair of an inline style.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Declarations is an ordered declaration list.
type Declarations []Declaration

// ParseDeclarations parses the contents of a style attribute. Property
// names are lower-cased and camelCase names are converted to kebab-case.
// Malformed entries are skipped.
func ParseDeclarations(styleAttr string) Declarations {
	var decls Declarations
	for _, part := range strings.Split(styleAttr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Split by first colon
		property, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		property = strings.TrimSpace(property)
		value = strings.TrimSpace(value)
		if property == "" || value == "" {
			continue
		}

		important := false
		if i := strings.LastIndex(value, "!"); i >= 0 && strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
			important = true
			value = strings.TrimSpace(value[:i])
		}

		decls = append(decls, Declaration{
			Property:  normalizePropertyName(property),
			Value:     value,
			Important: important,
		})
	}
	return decls
}

// Get returns the value of the last declaration of property.
func (d Declarations) Get(property string) (string, bool) {
	property = normalizePropertyName(property)
	for i := len(d) - 1; i >= 0; i-- {
		if d[i].Property == property {
			return d[i].Value, true
		}
	}
	return "", false
}

// String formats the list as a style attribute value.
func (d Declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		s := decl.Property + ": " + decl.Value
		if decl.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// normalizePropertyName converts camelCase to kebab-case and lowercases.
// Examples: "backgroundColor" -> "background-color", "COLOR" -> "color"
func normalizePropertyName(name string) string {
	if strings.Contains(name, "-") || strings.ToUpper(name) == name {
		return strings.ToLower(name)
	}

	var result strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(byte(r - 'A' + 'a'))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
