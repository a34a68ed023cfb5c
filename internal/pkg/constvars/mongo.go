package constvars

const (
	MongoCollectionProviderProfiles = "provider_profiles"
	MongoCollectionAccounts         = "accounts"
)
