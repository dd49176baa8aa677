package vectorize

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDocument_WriteSVG(t *testing.T) {
	doc, err := NewConverter().Convert(textGrid{"###", "...", "###"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	var sb strings.Builder
	if err := doc.WriteSVG(&sb); err != nil {
		t.Fatalf("WriteSVG() error = %v", err)
	}
	out := sb.String()

	if n := strings.Count(out, "<path"); n != 2 {
		t.Errorf("SVG has %d <path> elements, want 2:\n%s", n, out)
	}
	for _, want := range []string{
		`viewBox="0 0 3 3"`,
		`d="M0 0 L2 0"`,
		`d="M0 2 L2 2"`,
		DefaultStrokeStyle,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, `d="M0 0 L2 0"`) > strings.Index(out, `d="M0 2 L2 2"`) {
		t.Error("paths are not written in extraction order")
	}
}

func TestDocument_WriteSVG_Empty(t *testing.T) {
	doc := &Document{Width: 4, Height: 2}
	data, err := doc.SVG()
	if err != nil {
		t.Fatalf("SVG() error = %v", err)
	}
	if strings.Contains(string(data), "<path") {
		t.Errorf("empty document produced a path:\n%s", data)
	}
	if !strings.Contains(string(data), `viewBox="0 0 4 2"`) {
		t.Errorf("empty document missing viewBox:\n%s", data)
	}
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestDocument_WriteSVG_WriteError(t *testing.T) {
	boom := errors.New("disk full")
	doc := &Document{Width: 1, Height: 1}
	if err := doc.WriteSVG(failingWriter{boom}); !errors.Is(err, boom) {
		t.Errorf("WriteSVG() error = %v, want wrapped %v", err, boom)
	}
}

func TestDocument_SaveSVG(t *testing.T) {
	doc, err := NewConverter().Convert(textGrid{"###"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	if err := doc.SaveSVG(path); err != nil {
		t.Fatalf("SaveSVG() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), `d="M0 0 L2 0"`) {
		t.Errorf("saved SVG missing path data:\n%s", data)
	}

	if err := doc.SaveSVG(filepath.Join(dir, "missing", "out.svg")); err == nil {
		t.Error("SaveSVG() into a missing directory succeeded")
	}
}

func TestDocument_Polylines(t *testing.T) {
	doc, err := NewConverter().Convert(textGrid{"###", "...", "###"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	lines := doc.Polylines()
	if len(lines) != 2 {
		t.Fatalf("Polylines() len = %d, want 2", len(lines))
	}
	want := []Point{Pt(0, 2), Pt(2, 2)}
	if got := lines[1]; len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Polylines()[1] = %v, want %v", got, want)
	}
	if got := (&Document{}).Polylines(); len(got) != 0 {
		t.Errorf("empty Polylines() = %v, want none", got)
	}
}
