package envelope

import (
	"testing"

	"github.com/tidwall/gjson"
)

func TestNormalizeListEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "success with data array",
			body: `{"success":true,"data":[{"id":"1"},{"id":"2"}]}`,
			want: `[{"id":"1"},{"id":"2"}]`,
		},
		{
			name: "bare array",
			body: `[{"id":"a"},{"id":"b"},{"id":"c"}]`,
			want: `[{"id":"a"},{"id":"b"},{"id":"c"}]`,
		},
		{
			name: "empty data array",
			body: `{"success":true,"data":[]}`,
			want: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Normalize([]byte(tt.body))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if payload.Kind != KindList {
				t.Errorf("Expected KindList, got %v", payload.Kind)
			}
			if string(payload.Raw) != tt.want {
				t.Errorf("Expected payload %s, got %s", tt.want, payload.Raw)
			}
		})
	}
}

func TestNormalizeObjectEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "success with skill object",
			body: `{"success":true,"skill":{"id":"s1","name":"Go"}}`,
			want: `{"id":"s1","name":"Go"}`,
		},
		{
			name: "entity directly at top level by id",
			body: `{"id":"s1","category":"backend"}`,
			want: `{"id":"s1","category":"backend"}`,
		},
		{
			name: "entity directly at top level by Name",
			body: `{"Name":"Go","category":"backend"}`,
			want: `{"Name":"Go","category":"backend"}`,
		},
		{
			name: "success with data object",
			body: `{"success":true,"data":{"id":"b1","titulo":"Dune"}}`,
			want: `{"id":"b1","titulo":"Dune"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Normalize([]byte(tt.body))
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if payload.Kind != KindObject {
				t.Errorf("Expected KindObject, got %v", payload.Kind)
			}
			if string(payload.Raw) != tt.want {
				t.Errorf("Expected payload %s, got %s", tt.want, payload.Raw)
			}
		})
	}
}

func TestNormalizeDataArrayWinsOverEntityKey(t *testing.T) {
	// Precedence: the data-array form is checked before entity-keyed objects.
	body := `{"success":true,"data":[{"id":"1"}],"skill":{"id":"x"}}`

	payload, err := Normalize([]byte(body))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if payload.Kind != KindList {
		t.Errorf("Expected KindList, got %v", payload.Kind)
	}
}

func TestNormalizeUnrecognized(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope without payload", body: `{"success":true}`},
		{name: "object without identity", body: `{"status":"ok","count":3}`},
		{name: "scalar", body: `42`},
		{name: "success false with data", body: `{"success":false,"data":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize([]byte(tt.body))
			if err != ErrUnrecognizedShape {
				t.Errorf("Expected ErrUnrecognizedShape, got %v", err)
			}
		})
	}
}

func TestPickCasingFallback(t *testing.T) {
	doc := gjson.Parse(`{"Titulo":"Dune","autor":"Herbert","Paginas":412,"validated":true,"Tags":["sf","classic"]}`)

	if got := Str(doc, "titulo", "Titulo"); got != "Dune" {
		t.Errorf("Expected 'Dune', got '%s'", got)
	}
	if got := Str(doc, "autor", "Autor"); got != "Herbert" {
		t.Errorf("Expected 'Herbert', got '%s'", got)
	}
	if got := Int(doc, "paginas", "Paginas"); got != 412 {
		t.Errorf("Expected 412, got %d", got)
	}
	if !Bool(doc, "validated", "Validated") {
		t.Error("Expected validated true")
	}
	if got := Strings(doc, "tags", "Tags"); len(got) != 2 || got[0] != "sf" {
		t.Errorf("Expected [sf classic], got %v", got)
	}
	if got := Str(doc, "missing", "Missing"); got != "" {
		t.Errorf("Expected empty fallback, got '%s'", got)
	}
}
