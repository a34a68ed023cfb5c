package config

type (
	DriverConfig struct {
		MongoDB MongoDB
		Redis   Redis
		Logger  Logger
	}
	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
