package models

// Account is the credential record owned by the external auth service.
// Only read here, for the delete-profile password confirmation.
type Account struct {
	ID       string `bson:"_id,omitempty"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
	Role     string `bson:"role"`
}
