package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientProfileNotFound               = "provider profile not found"
	ErrClientProfileValidationFailed       = "some profile fields are invalid"
	ErrClientNICAlreadyRegistered          = "this NIC number is already registered"
	ErrClientPasswordIncorrect             = "password is incorrect"
	ErrClientSaveAlreadyInProgress         = "a save for this profile is already in progress"
	ErrClientCategoryUnknown               = "unknown service category"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevMissingRequestID      = "request id missing from context"
	ErrDevMissingSessionData    = "session data missing from context"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthInvalidSession = "invalid session"
	ErrDevRoleNotAllowed     = "role is not allowed to access this resource"
	ErrDevPasswordsDoNotMatch = "password confirmation does not match stored hash"

	// Profile messages
	ErrDevProfileNotFound        = "provider profile not found"
	ErrDevProfileValidation      = "provider profile failed business validation"
	ErrDevProfileDuplicateNIC    = "unique index violation on nic"
	ErrDevProfileSaveLockHeld    = "save lock already held for profile"
	ErrDevAccountNotFound        = "account not found"
	ErrDevCategoryUnknown        = "category has no catalogue policy"

	// Mongo DB messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid ObjectID"

	// Redis messages
	ErrDevRedisFailedToSet    = "failed to set redis key"
	ErrDevRedisFailedToGet    = "failed to get redis key"
	ErrDevRedisFailedToDelete = "failed to delete redis key"
	ErrDevRedisFailedToUnlock = "failed to release redis lock"
)
