package constvars

type ContextKey string

const (
	ResourceProviders  = "providers"
	ResourceCatalogues = "catalogues"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLPR_SVC_"
)

const (
	HelporaRoleClient   = "Client"
	HelporaRoleProvider = "Provider"
	HelporaRoleAdmin    = "Admin"
)

const (
	// Redis key prefixes. Profile mirrors and save locks are keyed by the
	// account id (a provider has at most one profile and the create flow
	// has no profile id yet), sessions by the session id from the JWT.
	RedisKeyProviderProfilePrefix = "provider:profile:"
	RedisKeyProviderSaveLock      = "provider:save:"
	RedisKeySessionPrefix         = "session:"
)
