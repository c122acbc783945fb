package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pluqqy/schemadeck/pkg/files"
)

var schemaTypePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateItemName validates a content item name
func ValidateItemName(name string) error {
	if name == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	return files.ValidateItemName(name)
}

// ValidateSchemaKey validates a schema key argument
func ValidateSchemaKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("schema key cannot be empty")
	}
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("schema key contains whitespace: %q", key)
	}
	return nil
}

// ValidateSchemaType validates a schema.org type name such as Article or FAQPage
func ValidateSchemaType(t string) error {
	if !schemaTypePattern.MatchString(t) {
		return fmt.Errorf("invalid schema type: %q (expected a schema.org type such as Article)", t)
	}
	return nil
}
