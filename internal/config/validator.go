package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"CMS_ENDPOINT",
	"CMS_TOKEN",
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("REVALIDATE_SECRET") == "" {
		warnings = append(warnings, "REVALIDATE_SECRET is not set - the revalidation endpoint will reject all requests")
	}

	if os.Getenv("CMS_TOKEN") == "replace_with_cms_api_token" {
		warnings = append(warnings, "CMS_TOKEN appears to be using the example value - create a token in the CMS admin panel")
	}

	return warnings, nil
}
