package models

// ExportVersion is written into every export file.
const ExportVersion = 1

// ContactExport is the on-disk format used by the client export and
// import commands. Contacts reference categories by the exporting user's
// ids; the import resolves them by category name.
type ContactExport struct {
	Version    int        `json:"version"`
	Categories []Category `json:"categories"`
	Contacts   []Contact  `json:"contacts"`
}

// CategoryNames maps category ids to names.
func (e ContactExport) CategoryNames() map[int64]string {
	names := make(map[int64]string, len(e.Categories))
	for _, c := range e.Categories {
		names[c.ID] = c.Name
	}
	return names
}
