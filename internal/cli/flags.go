package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// The opt helpers return nil for flags the user did not set, so absent
// options stay out of the request.

func optString(fs *pflag.FlagSet, name string) *string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetString(name)
	return &v
}

func optInt(fs *pflag.FlagSet, name string) *int {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt(name)
	return &v
}

func optInt64(fs *pflag.FlagSet, name string) *int64 {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetInt64(name)
	return &v
}

func optBool(fs *pflag.FlagSet, name string) *bool {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetBool(name)
	return &v
}

// optFilter is optString for query filters. An empty value is absent, so
// --milestone "" never becomes "milestone=".
func optFilter(fs *pflag.FlagSet, name string) *string {
	v := optString(fs, name)
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func optStringSlice(fs *pflag.FlagSet, name string) []string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetStringSlice(name)
	return v
}

// optStringList keeps an explicitly empty list (--labels "") so a payload
// can clear the field.
func optStringList(fs *pflag.FlagSet, name string) *[]string {
	if !fs.Changed(name) {
		return nil
	}
	v, _ := fs.GetStringSlice(name)
	if v == nil {
		v = []string{}
	}
	return &v
}

func optTime(fs *pflag.FlagSet, name string) (*time.Time, error) {
	s := optString(fs, name)
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: expected RFC3339 (e.g. 2024-01-02T15:04:05Z): %w", name, *s, err)
	}
	return &t, nil
}

func validateChoice(fs *pflag.FlagSet, name string, choices ...string) error {
	v := optString(fs, name)
	if v == nil {
		return nil
	}
	for _, choice := range choices {
		if *v == choice {
			return nil
		}
	}
	return fmt.Errorf("invalid --%s %q: must be one of %v", name, *v, choices)
}
