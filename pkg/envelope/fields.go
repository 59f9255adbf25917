package envelope

import "github.com/tidwall/gjson"

// The backend's serialization casing is inconsistent between endpoints:
// the same entity may arrive with PascalCase fields from one route and
// camelCase from another. Every read goes through these pickers, which
// try each candidate path in order and fall back to a zero value.

// Pick returns the first existing path in the document.
func Pick(doc gjson.Result, paths ...string) (value gjson.Result) {
	for _, path := range paths {
		if v := doc.Get(path); v.Exists() {
			value = v
			return value
		}
	}
	return value
}

// Str returns the first existing path as a string, or "".
func Str(doc gjson.Result, paths ...string) (value string) {
	value = Pick(doc, paths...).String()
	return value
}

// Int returns the first existing path as an int, or 0.
func Int(doc gjson.Result, paths ...string) (value int) {
	value = int(Pick(doc, paths...).Int())
	return value
}

// Float returns the first existing path as a float64, or 0.
func Float(doc gjson.Result, paths ...string) (value float64) {
	value = Pick(doc, paths...).Float()
	return value
}

// Bool returns the first existing path as a bool, or false.
func Bool(doc gjson.Result, paths ...string) (value bool) {
	value = Pick(doc, paths...).Bool()
	return value
}

// Strings returns the first existing path as a string slice, or nil.
func Strings(doc gjson.Result, paths ...string) (values []string) {
	picked := Pick(doc, paths...)
	if !picked.IsArray() {
		return values
	}
	for _, item := range picked.Array() {
		values = append(values, item.String())
	}
	return values
}
