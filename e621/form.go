package e621

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Form accumulates name/value pairs for an
// application/x-www-form-urlencoded body or a raw query string. Insertion
// order is preserved for determinism; the backend itself does not care.
type Form struct {
	parts []formPart
}

type formPart struct {
	name  string
	value string
}

// Add appends a name=value pair. Non-string values are coerced to their
// string form before encoding.
func (f *Form) Add(name string, value any) *Form {
	f.parts = append(f.parts, formPart{name: name, value: coerce(value)})
	return f
}

// AddRaw appends a bare value with no name, used by legacy endpoints that
// accept reason-only query parts.
func (f *Form) AddRaw(value string) *Form {
	f.parts = append(f.parts, formPart{value: value})
	return f
}

// Encode joins all pairs with "&" in insertion order, percent-encoding
// values. Field names are emitted verbatim (they contain brackets).
func (f *Form) Encode() string {
	var b strings.Builder
	for i, p := range f.parts {
		if i > 0 {
			b.WriteByte('&')
		}
		if p.name != "" {
			b.WriteString(p.name)
			b.WriteByte('=')
		}
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}

// Pairs returns the accumulated pairs in insertion order, for callers
// mixing field and file data in a multipart request.
func (f *Form) Pairs() [][2]string {
	out := make([][2]string, len(f.parts))
	for i, p := range f.parts {
		out[i] = [2]string{p.name, p.value}
	}
	return out
}

// Len returns the number of accumulated pairs.
func (f *Form) Len() int { return len(f.parts) }

func coerce(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
