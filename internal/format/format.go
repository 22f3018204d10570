package format

import (
	"github.com/fatih/color"

	"github.com/confcloud/confhub/pkg/logger"
)

// APIEndpoint represents an API endpoint
type APIEndpoint struct {
	Method      string
	Path        string
	Description string
}

// FormatHTTPMethod returns a colored and bold HTTP method string
func FormatHTTPMethod(method string) string {
	switch method {
	case "GET":
		return color.New(color.Bold, color.FgGreen).Sprint(method)
	case "POST":
		return color.New(color.Bold, color.FgYellow).Sprint(method)
	case "PUT":
		return color.New(color.Bold, color.FgBlue).Sprint(method)
	case "PATCH":
		return color.New(color.Bold, color.FgCyan).Sprint(method)
	case "DELETE":
		return color.New(color.Bold, color.FgRed).Sprint(method)
	case "HEAD":
		return color.New(color.Bold, color.FgMagenta).Sprint(method)
	case "OPTIONS":
		return color.New(color.Bold, color.FgWhite).Sprint(method)
	default:
		return color.New(color.Bold).Sprint(method)
	}
}

// LogAPIEndpoint logs an API endpoint with consistent formatting
func LogAPIEndpoint(log *logger.Logger, endpoint APIEndpoint) {
	// Using tabs for alignment since ANSI color codes don't affect tab stops
	log.Info("  %s\t\t%s\t\t%s",
		FormatHTTPMethod(endpoint.Method),
		endpoint.Path,
		endpoint.Description,
	)
}

// LogAPIEndpoints logs a header and a list of API endpoints
func LogAPIEndpoints(log *logger.Logger, endpoints []APIEndpoint) {
	log.Info("API endpoints:")
	for _, endpoint := range endpoints {
		LogAPIEndpoint(log, endpoint)
	}
}
