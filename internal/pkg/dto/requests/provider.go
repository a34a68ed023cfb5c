package requests

// SaveProviderProfile carries the raw form input for both the create and
// the edit flows. ID absent means create; present means update that record.
type SaveProviderProfile struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required,max=100"`
	Category  string    `json:"category" validate:"required,service_category"`
	District  string    `json:"district" validate:"required,district"`
	PayRate   []float64 `json:"payRate" validate:"omitempty,len=2"`
	Languages []string  `json:"languages"`
	Biography string    `json:"biography" validate:"max=2000"`
	PhotoRef  string    `json:"photoRef" validate:"omitempty,max=500"`

	NIC                 string `json:"nic" validate:"omitempty,max=20"`
	PoliceClearanceRef  string `json:"policeClearanceRef" validate:"omitempty,max=500"`
	BirthCertificateRef string `json:"birthCertificateRef" validate:"omitempty,max=500"`
	Gender              string `json:"gender" validate:"omitempty,oneof=male female other"`
	Availability        string `json:"availability" validate:"omitempty,availability"`

	Services  []string `json:"services"`
	PetTypes  []string `json:"petTypes"`
	AgeGroups []string `json:"ageGroups"`
	Syllabi   []string `json:"syllabi"`
	Subjects  []string `json:"subjects"`
	Grades    []string `json:"grades"`
}

// DeleteProviderProfile confirms the provider's password before the
// irreversible removal.
type DeleteProviderProfile struct {
	Password string `json:"password" validate:"required"`
}
