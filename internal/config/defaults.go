package config

import "strings"

// Supported APP_ENV values.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// placeholderMarkers are fragments left in DATABASE_URL by copied templates.
var placeholderMarkers = [...]string{
	"your-project",
	"your_project",
	"placeholder",
	"example",
	"changeme",
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}
