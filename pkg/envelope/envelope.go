package envelope

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrUnrecognizedShape indicates the response body matched none of the
// envelope forms the backend is known to produce. List loaders treat it
// as "no items", single-entity loaders fail hard.
var ErrUnrecognizedShape = errors.New("unrecognized response shape")

// Kind identifies what the inner payload is.
type Kind int

const (
	// KindList means the payload is a JSON array.
	KindList Kind = iota
	// KindObject means the payload is a single JSON object.
	KindObject
)

// Payload is the canonical inner payload extracted from a response
// envelope. Raw holds the payload exactly as the backend sent it so
// whole-entity rewrites preserve fields this client knows nothing about.
type Payload struct {
	Kind Kind
	Raw  []byte
}

// entityKeys are the object-bearing keys observed across endpoints. The
// backend wraps single entities under different names depending on the
// endpoint, so each is tried in turn.
var entityKeys = []string{"skill", "book", "entry", "data"}

// Normalize coerces a response body of unknown shape into the canonical
// inner payload. The backend is inconsistent about envelopes: some
// endpoints return {success, data:[...]}, some a bare array, some
// {success, skill:{...}}, and some the entity itself. Precedence is
// ordered and the first matching form wins.
func Normalize(body []byte) (payload Payload, err error) {
	doc := gjson.ParseBytes(body)

	// {success:true, data:[...]}
	if doc.Get("success").Bool() {
		if data := doc.Get("data"); data.IsArray() {
			payload = Payload{Kind: KindList, Raw: []byte(data.Raw)}
			return payload, err
		}
	}

	// Bare array.
	if doc.IsArray() {
		payload = Payload{Kind: KindList, Raw: []byte(doc.Raw)}
		return payload, err
	}

	// {success:true, skill:{...}} and friends.
	if doc.Get("success").Bool() {
		for _, key := range entityKeys {
			if inner := doc.Get(key); inner.IsObject() {
				payload = Payload{Kind: KindObject, Raw: []byte(inner.Raw)}
				return payload, err
			}
		}
	}

	// The entity itself, recognized by identity-bearing fields.
	if doc.IsObject() && hasIdentity(doc) {
		payload = Payload{Kind: KindObject, Raw: []byte(doc.Raw)}
		return payload, err
	}

	err = ErrUnrecognizedShape
	return payload, err
}

// hasIdentity reports whether the object carries a field that marks it
// as an entity rather than an envelope.
func hasIdentity(doc gjson.Result) (ok bool) {
	for _, field := range []string{"id", "Id", "ID", "name", "Name"} {
		if doc.Get(field).Exists() {
			ok = true
			return ok
		}
	}
	ok = false
	return ok
}
