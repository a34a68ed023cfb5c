package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Provider profile messages
	ProfileCreatedSuccess = "provider profile created successfully"
	ProfileUpdatedSuccess = "provider profile updated successfully"
	ProfileDeletedSuccess = "provider profile deleted successfully"
	ProfileGetSuccess     = "get provider profile successfully"

	// Catalogue messages
	CatalogueGetSuccess = "get catalogue successfully"
)
