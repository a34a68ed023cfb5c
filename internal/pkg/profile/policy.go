package profile

// Service categories a provider can register under.
const (
	CategoryHouseCleaning  = "HouseCleaning"
	CategoryKitchenHelpers = "KitchenHelpers"
	CategoryChildCare      = "ChildCare"
	CategoryElderCare      = "ElderCare"
	CategoryPetCare        = "PetCare"
	CategoryEducation      = "Education"
)

var Categories = []string{
	CategoryHouseCleaning,
	CategoryKitchenHelpers,
	CategoryChildCare,
	CategoryElderCare,
	CategoryPetCare,
	CategoryEducation,
}

var Districts = []string{
	"Ampara", "Anuradhapura", "Badulla", "Batticaloa", "Colombo",
	"Galle", "Gampaha", "Hambantota", "Jaffna", "Kalutara",
	"Kandy", "Kegalle", "Kilinochchi", "Kurunegala", "Mannar",
	"Matale", "Matara", "Monaragala", "Mullaitivu", "Nuwara Eliya",
	"Polonnaruwa", "Puttalam", "Ratnapura", "Trincomalee", "Vavuniya",
}

var Languages = []string{"Sinhala", "Tamil", "English"}

var Genders = []string{"male", "female", "other"}

var houseCleaningServices = []string{
	"Sweeping & Mopping", "Bathroom Cleaning", "Kitchen Cleaning",
	"Laundry & Ironing", "Window Cleaning", "Deep Cleaning",
}

var kitchenHelperServices = []string{
	"Meal Preparation", "Cooking Assistance", "Dish Washing",
	"Grocery Shopping", "Kitchen Organizing",
}

var childCareServices = []string{
	"Day Care", "After School Care", "Overnight Care",
	"Homework Help", "Infant Care",
}

var elderCareServices = []string{
	"Companionship", "Personal Care", "Medication Reminders",
	"Mobility Assistance", "Meal Assistance", "Overnight Supervision",
}

var petCareServices = []string{
	"Walking", "Day Care", "Overnight Sitting",
	"Training", "Grooming", "Transportation",
}

var petTypes = []string{"Dogs", "Cats", "Birds", "Fish", "Rabbits", "Reptiles"}

var ageGroups = []string{"Newborn", "Toddler", "Pre-school", "Primary School", "Teenager"}

var syllabi = []string{"Local", "Cambridge", "Edexcel", "International Baccalaureate"}

var subjects = []string{
	"Mathematics", "Science", "English", "Sinhala", "Tamil",
	"History", "Geography", "ICT", "Commerce", "Art", "Music",
}

var grades = []string{"Grade 1-5", "Grade 6-9", "O/L", "A/L"}

// Policy describes which conditional field groups apply to a category and
// the catalogues their values must be drawn from. The zero Policy (Known
// false, empty catalogues) is returned for unknown categories; callers must
// treat it as an invalid category rather than a pass.
type Policy struct {
	Known                   bool
	ServicesCatalogue       []string
	RequiresPetTypes        bool
	RequiresAgeGroups       bool
	RequiresEducationFields bool
	PetTypesCatalogue       []string
	AgeGroupsCatalogue      []string
	SyllabusCatalogue       []string
	SubjectCatalogue        []string
	GradeCatalogue          []string
}

// PolicyFor is a pure lookup, no side effects. Education is the only
// category without a services catalogue.
func PolicyFor(category string) Policy {
	switch category {
	case CategoryHouseCleaning:
		return Policy{Known: true, ServicesCatalogue: houseCleaningServices}
	case CategoryKitchenHelpers:
		return Policy{Known: true, ServicesCatalogue: kitchenHelperServices}
	case CategoryChildCare:
		return Policy{
			Known:              true,
			ServicesCatalogue:  childCareServices,
			RequiresAgeGroups:  true,
			AgeGroupsCatalogue: ageGroups,
		}
	case CategoryElderCare:
		return Policy{Known: true, ServicesCatalogue: elderCareServices}
	case CategoryPetCare:
		return Policy{
			Known:             true,
			ServicesCatalogue: petCareServices,
			RequiresPetTypes:  true,
			PetTypesCatalogue: petTypes,
		}
	case CategoryEducation:
		return Policy{
			Known:                   true,
			RequiresEducationFields: true,
			SyllabusCatalogue:       syllabi,
			SubjectCatalogue:        subjects,
			GradeCatalogue:          grades,
		}
	default:
		return Policy{}
	}
}

func contains(catalogue []string, value string) bool {
	for _, entry := range catalogue {
		if entry == value {
			return true
		}
	}
	return false
}
