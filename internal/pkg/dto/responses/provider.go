package responses

import "time"

type ProviderProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	District  string    `json:"district"`
	PayRate   []float64 `json:"payRate"`
	Languages []string  `json:"languages"`
	Biography string    `json:"biography"`
	PhotoRef  string    `json:"photoRef"`

	NIC                 string `json:"nic"`
	PoliceClearanceRef  string `json:"policeClearanceRef"`
	BirthCertificateRef string `json:"birthCertificateRef"`
	Gender              string `json:"gender"`
	Availability        string `json:"availability"`

	Services  []string `json:"services"`
	PetTypes  []string `json:"petTypes"`
	AgeGroups []string `json:"ageGroups"`
	Syllabi   []string `json:"syllabi"`
	Subjects  []string `json:"subjects"`
	Grades    []string `json:"grades"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
