package models

// Summary holds the per-user counters shown on the home screen.
type Summary struct {
	TotalContacts   int `json:"total_contacts"`
	TotalCategories int `json:"total_categories"`
}
