package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseQueries(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body>
		<h1 class="entry-title">Hello &amp; Goodbye</h1>
		<time class="entry-date" datetime="2012-03-15T10:00:00Z">March 15, 2012</time>
	</body></html>`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := doc.Find("h1.entry-title").First().Text(); got != "Hello & Goodbye" {
		t.Errorf("entry-title text = %q, want %q", got, "Hello & Goodbye")
	}
	attr, ok := doc.Find("time.entry-date").First().Attr("datetime")
	if !ok || attr != "2012-03-15T10:00:00Z" {
		t.Errorf("datetime attr = %q, %v, want %q, true", attr, ok, "2012-03-15T10:00:00Z")
	}
	if doc.Find("div.entry-content").Length() != 0 {
		t.Error("absent element should yield an empty selection")
	}
}

func TestParseMalformed(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html><body><article class="post"><p>unclosed`))
	if err != nil {
		t.Fatalf("Parse() should tolerate malformed HTML, got error: %v", err)
	}
	if doc.Find("article").Length() != 1 {
		t.Error("article should survive lenient parsing")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(`<html><title>Loaded</title></html>`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := doc.Find("title").Text(); got != "Loaded" {
		t.Errorf("title = %q, want %q", got, "Loaded")
	}

	if _, err := Load(filepath.Join(dir, "missing.html")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}
