package detect

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

func embeddedRecord(id string) catalog.ProjectRecord {
	return catalog.ProjectRecord{
		ProjectID: id,
		Title:     "Embedded project",
		BaseProject: map[string]any{
			"hazmapperMaps": []any{
				map[string]any{"uuid": "aaaa-1111", "name": "Site map"},
			},
		},
	}
}

func TestEmbeddedDetector(t *testing.T) {
	d := &EmbeddedDetector{}

	maps, err := d.HasMaps(context.Background(), embeddedRecord("PRJ-1"))
	if err != nil {
		t.Fatalf("HasMaps: %v", err)
	}
	want := []catalog.MapReference{{
		ProjectID: "PRJ-1",
		UUID:      "aaaa-1111",
		Name:      "Site map",
		URL:       catalog.ViewerURL("aaaa-1111"),
	}}
	if diff := cmp.Diff(want, maps); diff != "" {
		t.Errorf("maps mismatch (-want +got):\n%s", diff)
	}

	// No baseProject on the listing record: map-less, no error.
	maps, err = d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-2"})
	if err != nil || maps != nil {
		t.Errorf("bare record: maps=%v err=%v", maps, err)
	}

	// Entries without uuid are dropped.
	rec := catalog.ProjectRecord{
		ProjectID:   "PRJ-3",
		BaseProject: map[string]any{"hazmapperMaps": []any{map[string]any{"name": "broken"}}},
	}
	if maps, _ := d.HasMaps(context.Background(), rec); maps != nil {
		t.Errorf("uuid-less entry: %v", maps)
	}
}

func detailServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/publications/v2/PRJ-BASE":
			fmt.Fprint(w, `{"baseProject": {"hazmapperMaps": [{"uuid": "bbbb-2222", "name": "Base map"}]}}`)
		case "/api/publications/v2/PRJ-TREE":
			fmt.Fprint(w, `{
				"baseProject": {"title": "no maps here"},
				"tree": {"children": [
					{"value": {"title": "mission"}},
					{"value": {"hazmapperMaps": [{"uuid": "cccc-3333"}]}}
				]}
			}`)
		case "/api/publications/v2/PRJ-NONE":
			fmt.Fprint(w, `{"baseProject": {}, "tree": {"children": []}}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLookupDetector(t *testing.T) {
	server := detailServer(t)
	defer server.Close()

	client := catalog.NewClient(server.URL)
	client.HTTPClient = server.Client()
	d := &LookupDetector{Client: client}

	maps, err := d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-BASE"})
	if err != nil {
		t.Fatalf("baseProject leg: %v", err)
	}
	if len(maps) != 1 || maps[0].UUID != "bbbb-2222" {
		t.Errorf("baseProject leg: %+v", maps)
	}

	maps, err = d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-TREE"})
	if err != nil {
		t.Fatalf("tree leg: %v", err)
	}
	if len(maps) != 1 || maps[0].UUID != "cccc-3333" {
		t.Errorf("tree leg: %+v", maps)
	}
	if maps[0].ProjectID != "PRJ-TREE" {
		t.Errorf("project id: %q", maps[0].ProjectID)
	}

	maps, err = d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-NONE"})
	if err != nil || maps != nil {
		t.Errorf("map-less project: maps=%v err=%v", maps, err)
	}

	if _, err := d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-MISSING"}); err == nil {
		t.Error("404 detail: want error")
	}
}

func TestHybridDetector_FallsBackToLookup(t *testing.T) {
	server := detailServer(t)
	defer server.Close()

	client := catalog.NewClient(server.URL)
	client.HTTPClient = server.Client()
	d := &HybridDetector{
		Embedded: &EmbeddedDetector{},
		Lookup:   &LookupDetector{Client: client},
	}

	// Embedded answers without touching the network.
	maps, err := d.HasMaps(context.Background(), embeddedRecord("PRJ-1"))
	if err != nil || len(maps) != 1 || maps[0].UUID != "aaaa-1111" {
		t.Errorf("embedded leg: maps=%v err=%v", maps, err)
	}

	// Bare listing record falls through to the detail fetch.
	maps, err = d.HasMaps(context.Background(), catalog.ProjectRecord{ProjectID: "PRJ-TREE"})
	if err != nil || len(maps) != 1 || maps[0].UUID != "cccc-3333" {
		t.Errorf("lookup leg: maps=%v err=%v", maps, err)
	}
}

func TestNew_StrategySelection(t *testing.T) {
	client := catalog.NewClient("")

	if _, ok := New(StrategyEmbedded, client).(*EmbeddedDetector); !ok {
		t.Error("embedded strategy")
	}
	if _, ok := New(StrategyLookup, client).(*LookupDetector); !ok {
		t.Error("lookup strategy")
	}
	if _, ok := New("", client).(*HybridDetector); !ok {
		t.Error("default strategy should be hybrid")
	}
	if _, ok := New("bogus", client).(*HybridDetector); !ok {
		t.Error("unknown strategy should fall back to hybrid")
	}
}
