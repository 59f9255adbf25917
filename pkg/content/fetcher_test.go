package content

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFetchFromFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "notes.txt")
	testContent := "Goroutines multiplex onto OS threads."

	err := os.WriteFile(testFile, []byte(testContent+"\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	text, err := Fetch(context.Background(), testFile)
	if err != nil {
		t.Fatalf("Failed to fetch from file: %v", err)
	}

	if text != testContent {
		t.Errorf("Expected content '%s', got '%s'", testContent, text)
	}
}

func TestFetchFromFileNonexistent(t *testing.T) {
	_, err := Fetch(context.Background(), "/nonexistent/file.txt")
	if err == nil {
		t.Error("Expected error fetching nonexistent file, got nil")
	}
}

func TestFetchFromFileEmpty(t *testing.T) {
	emptyFile := filepath.Join(t.TempDir(), "empty.txt")

	err := os.WriteFile(emptyFile, []byte("  \n\t"), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err = Fetch(context.Background(), emptyFile)
	if err == nil {
		t.Error("Expected error fetching whitespace-only file, got nil")
	}
}

func TestFetchFromFileTooLarge(t *testing.T) {
	bigFile := filepath.Join(t.TempDir(), "big.txt")

	err := os.WriteFile(bigFile, bytes.Repeat([]byte("a"), maxContentBytes+1), 0600)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	_, err = Fetch(context.Background(), bigFile)
	if err == nil {
		t.Error("Expected error for oversized file, got nil")
	}
	if !strings.Contains(err.Error(), "content limit") {
		t.Errorf("Expected content limit error, got: %v", err)
	}
}

func TestFetchFromURLStripsHTML(t *testing.T) {
	page := `<html><head><style>.x{color:red}</style></head>
<body><h1>Concurrency</h1><script>alert("hi")</script>
<p>Channels &amp; goroutines synchronize.</p></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch from URL: %v", err)
	}

	expected := "Concurrency Channels & goroutines synchronize."
	if text != expected {
		t.Errorf("Expected '%s', got '%s'", expected, text)
	}
}

func TestFetchFromURLPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("select {} blocks forever\n"))
	}))
	defer server.Close()

	text, err := Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Failed to fetch from URL: %v", err)
	}

	// Plain text passes through untouched apart from trimming.
	if text != "select {} blocks forever" {
		t.Errorf("Unexpected text: '%s'", text)
	}
}

func TestFetchFromURLUnsupportedType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for image response, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported content type") {
		t.Errorf("Expected unsupported content type error, got: %v", err)
	}
}

func TestFetchFromURLTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(bytes.Repeat([]byte("b"), maxContentBytes+1))
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for oversized page, got nil")
	}
	if !strings.Contains(err.Error(), "content limit") {
		t.Errorf("Expected content limit error, got: %v", err)
	}
}

func TestFetchFromURL404(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL)
	if err == nil {
		t.Error("Expected error for 404 response, got nil")
	}
}

func TestFetchFromURLTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Second)
		_, _ = w.Write([]byte("too slow"))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := Fetch(ctx, server.URL)
	if err == nil {
		t.Error("Expected timeout error, got nil")
	}
}

func TestToText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple tags",
			input:    "<p>Hello <strong>world</strong></p>",
			expected: "Hello world",
		},
		{
			name:     "script dropped with its content",
			input:    "<p>Text</p><script>var x = '<p>not text</p>'</script><p>More</p>",
			expected: "Text More",
		},
		{
			name:     "style and noscript dropped",
			input:    "<style>.c{color:red}</style><noscript>enable js</noscript>Content",
			expected: "Content",
		},
		{
			name:     "entities decoded",
			input:    "a &lt;- ch &amp;&nbsp;&quot;done&quot;",
			expected: `a <- ch & "done"`,
		},
		{
			name:     "whitespace collapsed",
			input:    "<div>\n  one\n\n  two\t</div>",
			expected: "one two",
		},
		{
			name:     "unterminated script",
			input:    "before<script>never closed",
			expected: "before",
		},
		{
			name:     "no HTML",
			input:    "Plain text",
			expected: "Plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toText(tt.input)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}
