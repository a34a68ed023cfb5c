package models

// ProviderProfile is the service-provider profile owned by this service.
// An empty ID means the profile has not been persisted yet; the mongo store
// assigns the ObjectID hex on create. Which of the conditional subset fields
// are required depends on Category, see profile.PolicyFor.
type ProviderProfile struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	AccountID string    `json:"accountId,omitempty" bson:"accountId,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	District  string    `json:"district" bson:"district"`
	PayRate   []float64 `json:"payRate" bson:"payRate"`
	Languages []string  `json:"languages" bson:"languages"`
	Biography string    `json:"biography" bson:"biography"`
	PhotoRef  string    `json:"photoRef" bson:"photoRef"`

	// Verification fields, all mandatory on create.
	NIC                 string `json:"nic" bson:"nic"`
	PoliceClearanceRef  string `json:"policeClearanceRef" bson:"policeClearanceRef"`
	BirthCertificateRef string `json:"birthCertificateRef" bson:"birthCertificateRef"`
	Gender              string `json:"gender" bson:"gender"`
	Availability        string `json:"availability" bson:"availability"`

	// Category-conditional subsets. Services applies to every category
	// except Education; PetTypes only to PetCare; AgeGroups only to
	// ChildCare; Syllabi/Subjects/Grades only to Education.
	Services  []string `json:"services" bson:"services"`
	PetTypes  []string `json:"petTypes" bson:"petTypes"`
	AgeGroups []string `json:"ageGroups" bson:"ageGroups"`
	Syllabi   []string `json:"syllabi" bson:"syllabi"`
	Subjects  []string `json:"subjects" bson:"subjects"`
	Grades    []string `json:"grades" bson:"grades"`

	TimeModel `bson:",inline"`
}

// ConvertToBsonM builds the $set document for profile updates. Identity
// fields (_id, accountId, createdAt) are never part of an update.
func (p *ProviderProfile) ConvertToBsonM() map[string]interface{} {
	return map[string]interface{}{
		"name":                p.Name,
		"category":            p.Category,
		"district":            p.District,
		"payRate":             p.PayRate,
		"languages":           p.Languages,
		"biography":           p.Biography,
		"photoRef":            p.PhotoRef,
		"nic":                 p.NIC,
		"policeClearanceRef":  p.PoliceClearanceRef,
		"birthCertificateRef": p.BirthCertificateRef,
		"gender":              p.Gender,
		"availability":        p.Availability,
		"services":            p.Services,
		"petTypes":            p.PetTypes,
		"ageGroups":           p.AgeGroups,
		"syllabi":             p.Syllabi,
		"subjects":            p.Subjects,
		"grades":              p.Grades,
		"updatedAt":           p.UpdatedAt,
	}
}
