package twin

import (
	"path/filepath"
	"testing"
)

func TestDecodeBookMixedCasing(t *testing.T) {
	// One endpoint sends camelCase, another PascalCase; a single record
	// can even mix both.
	raw := []byte(`{"Id":"b1","Titulo":"Dune","autor":"Herbert","Paginas":412,` +
		`"estado":"Leyendo","Calificacion":4.5,"tags":["sf"]}`)

	book := DecodeBook(raw)

	if book.ID != "b1" {
		t.Errorf("Expected id 'b1', got '%s'", book.ID)
	}
	if book.Titulo != "Dune" || book.Autor != "Herbert" {
		t.Errorf("Unexpected title/author: %s / %s", book.Titulo, book.Autor)
	}
	if book.Paginas != 412 {
		t.Errorf("Expected 412 pages, got %d", book.Paginas)
	}
	if book.Estado != BookLeyendo {
		t.Errorf("Expected estado 'Leyendo', got '%s'", book.Estado)
	}
	if book.Calificacion != 4.5 {
		t.Errorf("Expected calificacion 4.5, got %v", book.Calificacion)
	}
	if len(book.Tags) != 1 || book.Tags[0] != "sf" {
		t.Errorf("Unexpected tags: %v", book.Tags)
	}
}

func TestDecodeBookMissingFields(t *testing.T) {
	book := DecodeBook([]byte(`{"id":"b2"}`))

	if book.ID != "b2" {
		t.Errorf("Expected id 'b2', got '%s'", book.ID)
	}
	if book.Titulo != "" || book.Paginas != 0 || book.Tags != nil {
		t.Errorf("Expected zero values for missing fields, got %+v", book)
	}
}

func TestDecodeSkillKeepsRawDocument(t *testing.T) {
	raw := []byte(`{"id":"s1","name":"Go","serverOnly":true,"whatLearned":[{"id":"L1","name":"Goroutines"}]}`)

	skill := DecodeSkill(raw)

	if skill.ID != "s1" || skill.Name != "Go" {
		t.Errorf("Unexpected skill: %+v", skill)
	}
	if len(skill.WhatLearned) != 1 || skill.WhatLearned[0].ID != "L1" {
		t.Errorf("Unexpected learnings: %+v", skill.WhatLearned)
	}
	if string(skill.Raw) != string(raw) {
		t.Error("Raw document must be kept verbatim for rewrites")
	}
}

func TestBookApplyDefaults(t *testing.T) {
	book := Book{Titulo: "Dune"}
	book.ApplyDefaults()

	if book.ID == "" {
		t.Error("Expected a generated id")
	}
	if book.Estado != BookPorLeer {
		t.Errorf("Expected estado 'Por leer', got '%s'", book.Estado)
	}

	// Defaults never clobber explicit values.
	book2 := Book{ID: "keep", Titulo: "Dune", Estado: BookTerminado}
	book2.ApplyDefaults()
	if book2.ID != "keep" || book2.Estado != BookTerminado {
		t.Errorf("Defaults overwrote explicit values: %+v", book2)
	}
}

func TestBookValidate(t *testing.T) {
	tests := []struct {
		name    string
		book    Book
		wantErr bool
	}{
		{name: "valid", book: Book{Titulo: "Dune", Estado: BookPorLeer, Formato: FormatoDigital}},
		{name: "missing title", book: Book{Estado: BookPorLeer}, wantErr: true},
		{name: "bad estado", book: Book{Titulo: "Dune", Estado: "leído"}, wantErr: true},
		{name: "bad formato", book: Book{Titulo: "Dune", Formato: "papel"}, wantErr: true},
		{name: "rating too high", book: Book{Titulo: "Dune", Calificacion: 6}, wantErr: true},
		{name: "rating in range", book: Book{Titulo: "Dune", Calificacion: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.book.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected valid book, got %v", err)
			}
		})
	}
}

func TestOpportunityApplyDefaults(t *testing.T) {
	opp := Opportunity{Empresa: "Acme", Puesto: "SRE"}
	opp.ApplyDefaults()

	if opp.ID == "" {
		t.Error("Expected a generated id")
	}
	if opp.Estado != OppInteresado {
		t.Errorf("Expected default estado 'interesado', got '%s'", opp.Estado)
	}
	if opp.FechaAplicacion == "" {
		t.Error("Expected a default application date")
	}
}

func TestOpportunityValidate(t *testing.T) {
	opp := Opportunity{Empresa: "Acme", Puesto: "SRE", Estado: "fantaseando"}
	if err := opp.Validate(); err == nil {
		t.Error("Expected error for unknown estado, got nil")
	}

	opp.Estado = OppEntrevista
	opp.ContactoEmail = "not-an-email"
	if err := opp.Validate(); err == nil {
		t.Error("Expected error for bad contact email, got nil")
	}
}

func TestActivityValidate(t *testing.T) {
	activity := Activity{Titulo: "Vuelo", Tipo: "teletransporte"}
	if err := activity.Validate(); err == nil {
		t.Error("Expected error for unknown tipo, got nil")
	}

	activity.Tipo = "transporte"
	activity.Prioridad = "alta"
	activity.Estado = ActividadConfirmada
	if err := activity.Validate(); err != nil {
		t.Errorf("Expected valid activity, got %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "books.json")
	books := []Book{
		{ID: "b1", Titulo: "Dune", Estado: BookTerminado},
		{ID: "b2", Titulo: "Hyperion", Estado: BookPorLeer},
	}

	err := Export(books, path)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var loaded []Book
	err = Import(path, &loaded)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if len(loaded) != 2 || loaded[0].Titulo != "Dune" || loaded[1].ID != "b2" {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}
