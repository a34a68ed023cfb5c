package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	SaveLockExpiryInSeconds  int
	CacheMirrorTTLInHours    int
}

type JWT struct {
	Secret string
}
