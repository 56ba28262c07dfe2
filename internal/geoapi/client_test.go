package geoapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func geoapiServer(t *testing.T, gotHeaders *http.Header) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotHeaders != nil {
			*gotHeaders = r.Header.Clone()
		}
		switch {
		case r.URL.Path == "/" && r.URL.Query().Get("uuid") == "abc-123":
			fmt.Fprint(w, `[{"id": 42, "uuid": "abc-123", "name": "Camp Wildfire", "system_name": "project-7441"}]`)
		case r.URL.Path == "/":
			fmt.Fprint(w, `[]`)
		case r.URL.Path == "/42/tile-servers/":
			fmt.Fprint(w, `[{"id": 1, "name": "Satellite", "url": "https://tiles.example.com/sat", "type": "tms",
				"uiOptions": {"zIndex": 1, "opacity": 0.9}}]`)
		case r.URL.Path == "/42/features/":
			fmt.Fprint(w, `{"type": "FeatureCollection", "features": [
				{"geometry": {"type": "Point", "coordinates": [1, 2]},
				 "assets": [{"id": 9, "asset_type": "image", "display_path": "p.jpg"}]}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestClient_ThreeStepLoad(t *testing.T) {
	var headers http.Header
	server := geoapiServer(t, &headers)
	defer server.Close()

	client := NewClient(server.URL)
	client.HTTPClient = server.Client()
	ctx := context.Background()

	project, err := client.ProjectByUUID(ctx, "abc-123")
	if err != nil {
		t.Fatalf("ProjectByUUID: %v", err)
	}
	if project.ID != 42 || project.Name != "Camp Wildfire" {
		t.Errorf("project: %+v", project)
	}

	// Public-view headers ride on every request.
	if headers.Get("X-Geoapi-Application") != "QGIS" {
		t.Errorf("application header: %q", headers.Get("X-Geoapi-Application"))
	}
	if headers.Get("X-Geoapi-IsPublicView") != "true" {
		t.Errorf("public view header: %q", headers.Get("X-Geoapi-IsPublicView"))
	}
	if headers.Get("X-Guest-Uuid") == "" {
		t.Error("guest uuid header missing")
	}

	servers, err := client.TileServers(ctx, project.ID)
	if err != nil {
		t.Fatalf("TileServers: %v", err)
	}
	if len(servers) != 1 || servers[0].Name != "Satellite" {
		t.Errorf("tile servers: %+v", servers)
	}
	if servers[0].UIOptions.Opacity == nil || *servers[0].UIOptions.Opacity != 0.9 {
		t.Errorf("opacity: %+v", servers[0].UIOptions)
	}

	fc, err := client.Features(ctx, project.ID, nil)
	if err != nil {
		t.Fatalf("Features: %v", err)
	}
	if len(fc.Features) != 1 || fc.Features[0].Assets[0].AssetType != "image" {
		t.Errorf("features: %+v", fc.Features)
	}
}

func TestClient_UnknownUUID(t *testing.T) {
	server := geoapiServer(t, nil)
	defer server.Close()

	client := NewClient(server.URL)
	client.HTTPClient = server.Client()

	if _, err := client.ProjectByUUID(context.Background(), "missing"); err == nil {
		t.Fatal("want error for unknown uuid")
	}
}

func TestClient_DefaultAssetTypesInQuery(t *testing.T) {
	var askedTypes string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		askedTypes = r.URL.Query().Get("assetType")
		fmt.Fprint(w, `{"type": "FeatureCollection", "features": []}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.HTTPClient = server.Client()

	if _, err := client.Features(context.Background(), 7, nil); err != nil {
		t.Fatalf("Features: %v", err)
	}
	want := "image,video,point_cloud,streetview,questionnaire,no_asset_vector"
	if askedTypes != want {
		t.Errorf("assetType query: %q, want %q", askedTypes, want)
	}
}

func TestGetOrCreateGuestUUID_Stable(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first := GetOrCreateGuestUUID()
	if first == "" {
		t.Fatal("empty guest uuid")
	}
	second := GetOrCreateGuestUUID()
	if first != second {
		t.Errorf("guest uuid not persistent: %q vs %q", first, second)
	}
}
