package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"url":              "must be a valid URL",
	"service_category": "must be a known service category",
	"district":         "must be a known district",
	"availability":     "must be either 'yes' or 'no'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
