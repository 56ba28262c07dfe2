package main

import (
	"context"
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/TACC/hazmapper-qgis-plugin/internal/app"
	"github.com/TACC/hazmapper-qgis-plugin/internal/published"
)

// App struct
type App struct {
	ctx     context.Context
	service *app.Service
}

// NewApp creates a new App application struct
func NewApp() *App {
	svc, err := app.NewService("")
	if err != nil {
		fmt.Printf("Error initializing service: %v\n", err)
	}
	return &App{
		service: svc,
	}
}

// startup is called when the app starts. The context is saved
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app terminates.
func (a *App) shutdown(ctx context.Context) {
	_ = ctx
}

// ListPublishedMaps returns the project browser entries from the
// static configuration.
func (a *App) ListPublishedMaps() ([]published.Map, error) {
	if a.service == nil {
		return nil, fmt.Errorf("backend service not initialized")
	}
	return a.service.Published, nil
}

// LoadParams exposed to frontend
type LoadParams struct {
	URL string `json:"url"`
}

// LoadProject fetches a public map and returns its layer descriptors.
func (a *App) LoadProject(p LoadParams) (*app.ProjectBundle, error) {
	if a.service == nil {
		return nil, fmt.Errorf("backend service not initialized")
	}
	if !published.IsValidURL(p.URL) {
		return nil, fmt.Errorf("not a public Hazmapper URL: %s", p.URL)
	}
	return a.service.LoadProject(a.ctx, p.URL)
}

// SaveCatalogReport prompts for a path and writes the Word report of
// the published-map catalog.
func (a *App) SaveCatalogReport() (string, error) {
	if a.service == nil {
		return "", fmt.Errorf("backend service not initialized")
	}
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: "published_hazmapper_maps.docx",
		Title:           "Save Catalog Report",
		Filters: []runtime.FileFilter{
			{DisplayName: "Word Documents (*.docx)", Pattern: "*.docx"},
		},
	})
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil // User cancelled
	}

	err = a.service.GenerateCatalogReport(path)
	if err != nil {
		return "", err
	}
	return path, nil
}
