package files

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	dashRuns     = regexp.MustCompile(`-+`)
	validItem    = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Slugify converts a display name to a valid item name
// Examples:
//
//	"Hello World" → "hello-world"
//	"User's Profile!" → "users-profile"
//	"Post #42" → "post-42"
func Slugify(displayName string) string {
	slug := strings.ToLower(displayName)
	slug = strings.ReplaceAll(slug, "'", "")
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	slug = dashRuns.ReplaceAllString(slug, "-")

	if slug == "" {
		slug = "unnamed"
	}

	return slug
}

// ValidateItemName rejects names that are not already slugs, so an item name
// can never escape the items directory.
func ValidateItemName(item string) error {
	if !validItem.MatchString(item) {
		return fmt.Errorf("invalid item name %q (use lowercase letters, digits and hyphens, e.g. %q)", item, Slugify(item))
	}
	return nil
}
