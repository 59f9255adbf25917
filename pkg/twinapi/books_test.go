package twinapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/twinops/twinctl/pkg/twin"
	"github.com/twinops/twinctl/pkg/twinapi"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (client *twinapi.Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client = twinapi.New(server.URL, "")
	return client
}

func TestListBooksEnvelopeForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "success data envelope",
			body: `{"success":true,"data":[{"titulo":"Dune"},{"titulo":"Hyperion"}]}`,
			want: 2,
		},
		{
			name: "bare array",
			body: `[{"titulo":"Dune"}]`,
			want: 1,
		},
		{
			name: "PascalCase fields",
			body: `[{"Titulo":"Dune","Autor":"Herbert"}]`,
			want: 1,
		},
		{
			name: "unrecognized shape degrades to empty",
			body: `{"success":true,"message":"ok"}`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			books, err := client.ListBooks(context.Background(), "t1")
			if err != nil {
				t.Fatalf("ListBooks failed: %v", err)
			}
			if len(books) != tt.want {
				t.Errorf("Expected %d books, got %d", tt.want, len(books))
			}
		})
	}
}

func TestListBooks404MeansEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	books, err := client.ListBooks(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Expected 404 to mean no books yet, got error: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("Expected empty list, got %d books", len(books))
	}
}

func TestListBooks500IsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.ListBooks(context.Background(), "t1")
	if err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
	if twinapi.IsNotFound(err) {
		t.Error("500 must not be treated as not-found")
	}
}

func TestCreateBookAppliesDefaults(t *testing.T) {
	var posted []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/twins/T1/books" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		posted, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	})

	created, err := client.CreateBook(context.Background(), "T1", twin.Book{
		Titulo: "Dune",
		Autor:  "Herbert",
	})
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}

	if created.ID == "" {
		t.Error("Expected a generated id")
	}
	if created.Estado != twin.BookPorLeer {
		t.Errorf("Expected default estado 'Por leer', got '%s'", created.Estado)
	}
	if created.Calificacion != 0 {
		t.Errorf("Expected default calificacion 0, got %v", created.Calificacion)
	}

	sent := gjson.ParseBytes(posted)
	if sent.Get("id").String() != created.ID {
		t.Error("Posted body must carry the generated id")
	}
	if sent.Get("estado").String() != twin.BookPorLeer {
		t.Errorf("Posted estado wrong: %s", sent.Get("estado").String())
	}
}

func TestCreateBookPrefersServerEcho(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"server-id","titulo":"Dune","estado":"Por leer"}}`))
	})

	created, err := client.CreateBook(context.Background(), "T1", twin.Book{Titulo: "Dune"})
	if err != nil {
		t.Fatalf("CreateBook failed: %v", err)
	}
	if created.ID != "server-id" {
		t.Errorf("Expected server-assigned id, got '%s'", created.ID)
	}
}

func TestCreateBookRejectsInvalidEstado(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.CreateBook(context.Background(), "T1", twin.Book{
		Titulo: "Dune",
		Estado: "no-such-state",
	})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if called {
		t.Error("Invalid book must not reach the backend")
	}
}

func TestDeleteBook(t *testing.T) {
	var method, path string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
	})

	err := client.DeleteBook(context.Background(), "t1", "b9")
	if err != nil {
		t.Fatalf("DeleteBook failed: %v", err)
	}
	if method != http.MethodDelete || path != "/twins/t1/books/b9" {
		t.Errorf("Unexpected request: %s %s", method, path)
	}
}
