package catalog

// ProjectRecord is one entry of the DesignSafe published-projects
// listing. Immutable once fetched.
type ProjectRecord struct {
	ProjectID   string         `json:"projectId"`
	Title       string         `json:"title"`
	PI          string         `json:"pi,omitempty"`
	Created     string         `json:"created,omitempty"`
	Keywords    []string       `json:"keywords,omitempty"`
	BaseProject map[string]any `json:"baseProject,omitempty"`
}

// MapReference points at a viewer-ready Hazmapper map confirmed to
// belong to a ProjectRecord from the same crawl.
type MapReference struct {
	ProjectID string `json:"designSafeProjectId"`
	UUID      string `json:"uuid"`
	Name      string `json:"name,omitempty"`
	URL       string `json:"url"`
}

// ProjectMaps pairs a catalog record with the maps detected for it.
type ProjectMaps struct {
	Project ProjectRecord  `json:"project"`
	Maps    []MapReference `json:"hazmapperMaps"`
}

// DiscoveryResult is the ordered outcome of one crawl. It is assembled
// once, then consumed by the emitters; nothing mutates it afterwards.
type DiscoveryResult struct {
	Projects []ProjectMaps `json:"projects"`
}

// ProjectIDs returns the identifiers in listing order.
func (r DiscoveryResult) ProjectIDs() []string {
	ids := make([]string, 0, len(r.Projects))
	for _, p := range r.Projects {
		ids = append(ids, p.Project.ProjectID)
	}
	return ids
}

// MapCount returns the total number of map references across projects.
func (r DiscoveryResult) MapCount() int {
	n := 0
	for _, p := range r.Projects {
		n += len(p.Maps)
	}
	return n
}
