package responses

// CategoryCatalogue lists every selectable value for one category so the
// UI renders buttons from the same policy the validator enforces.
type CategoryCatalogue struct {
	Category  string   `json:"category"`
	Services  []string `json:"services,omitempty"`
	PetTypes  []string `json:"petTypes,omitempty"`
	AgeGroups []string `json:"ageGroups,omitempty"`
	Syllabi   []string `json:"syllabi,omitempty"`
	Subjects  []string `json:"subjects,omitempty"`
	Grades    []string `json:"grades,omitempty"`
}
