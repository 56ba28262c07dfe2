package format

import (
	"strings"
	"testing"
)

func TestTable_Markdown(t *testing.T) {
	tbl := NewTable(Markdown)
	tbl.Header("Project", "Title", "Viewer")
	tbl.Row("PRJ-1000", "Camp Wildfire", "[open](https://example.com/a)")
	tbl.Row("PRJ-2000", "Hurricane Harvey", "[open](https://example.com/b)")
	out := tbl.String()

	if !strings.Contains(out, "| Project") {
		t.Errorf("missing markdown header:\n%s", out)
	}
	if !strings.Contains(out, "| PRJ-1000 |") {
		t.Errorf("missing first row:\n%s", out)
	}
	if !strings.Contains(out, "[open](https://example.com/b)") {
		t.Errorf("link cell mangled:\n%s", out)
	}
	if strings.Contains(out, "┌") {
		t.Errorf("box drawing in markdown output:\n%s", out)
	}
}

func TestTable_ASCII(t *testing.T) {
	tbl := NewTable(ASCII)
	tbl.Header("Project", "Maps")
	tbl.Row("PRJ-1000", 2)
	out := tbl.String()

	if !strings.Contains(out, "┌") || !strings.Contains(out, "└") {
		t.Errorf("want light box drawing:\n%s", out)
	}
	if !strings.Contains(out, "PRJ-1000") {
		t.Errorf("missing row:\n%s", out)
	}
}
