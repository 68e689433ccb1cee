package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestTextFileExtractor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.txt")
	content := "PROGRESS NOTE\nSeen 01/02/2020\n\fLABORATORY REPORT\nCBC panel\n\fDISCHARGE SUMMARY"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := NewTextFileExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}
	for i, p := range pages {
		if p.PageNumber != i+1 {
			t.Errorf("page %d numbered %d", i, p.PageNumber)
		}
	}
	if pages[0].Text != "PROGRESS NOTE\nSeen 01/02/2020" {
		t.Errorf("page 1 text = %q", pages[0].Text)
	}
	if pages[2].Text != "DISCHARGE SUMMARY" {
		t.Errorf("page 3 text = %q", pages[2].Text)
	}
}

func TestTextFileExtractorSinglePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.txt")
	if err := os.WriteFile(path, []byte("one page only\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	pages, err := NewTextFileExtractor().Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(pages) != 1 || pages[0].Text != "one page only" {
		t.Errorf("pages = %+v", pages)
	}
}

func TestTextFileExtractorMissingFile(t *testing.T) {
	_, err := NewTextFileExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTextFileExtractorCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewTextFileExtractor().Extract(ctx, "ignored.txt"); err == nil {
		t.Fatal("expected context error")
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"records/bundle.pdf", false},
		{"records/BUNDLE.PDF", false},
		{"records/bundle.txt", false},
		{"records/bundle.docx", true},
		{"records/bundle", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ex, err := ForPath(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ForPath(%q) succeeded, want error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath(%q): %v", tt.path, err)
			}
			if ex == nil {
				t.Fatalf("ForPath(%q) returned nil extractor", tt.path)
			}
		})
	}
}
