package cli

import (
	"fmt"
	"regexp"
	"strings"
)

var draftNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// ValidateDraftName checks that a name is safe to use as a filename.
func ValidateDraftName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("draft name cannot be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("draft name too long (max 100 characters)")
	}
	if !draftNamePattern.MatchString(name) {
		return fmt.Errorf("draft name may only contain letters, digits, hyphens, and underscores, and must not start with a separator")
	}
	return nil
}

// SlugifyTitle turns an arbitrary title into a usable draft name.
func SlugifyTitle(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > 60 {
		slug = strings.Trim(slug[:60], "-")
	}
	if slug == "" {
		slug = "imported"
	}
	return slug
}
