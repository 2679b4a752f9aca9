package importer

import (
	"fmt"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
)

// ValidateImportSchema checks the import schema for structural errors before
// conversion. Returns a slice of all validation errors found. Timestamps are
// not validated here: unparsable values coerce to unscheduled on conversion,
// matching how the engine treats malformed schedule data.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSettings(schema.Settings)...)

	itemRefs := make(map[string]bool)
	errs = append(errs, validateItems(schema.Items, itemRefs)...)
	errs = append(errs, validateDependencies(schema.Dependencies, itemRefs)...)

	return errs
}

func validateSettings(s *SettingsImport) []error {
	if s == nil {
		return nil
	}
	var errs []error

	if s.BufferHours != nil && (*s.BufferHours < 0 || *s.BufferHours > 24) {
		errs = append(errs, fmt.Errorf("settings.buffer_hours: %v is out of range (0-24)", *s.BufferHours))
	}
	if s.Granularity != nil && !timeline.ValidGranularities[timeline.Granularity(*s.Granularity)] {
		errs = append(errs, fmt.Errorf("settings.granularity: unknown granularity %q", *s.Granularity))
	}
	return errs
}

func validateItems(items []ItemImport, refs map[string]bool) []error {
	var errs []error

	if len(items) == 0 {
		errs = append(errs, fmt.Errorf("items: at least one item is required"))
	}
	for i, item := range items {
		if item.Ref == "" {
			errs = append(errs, fmt.Errorf("items[%d]: ref is required", i))
		} else if refs[item.Ref] {
			errs = append(errs, fmt.Errorf("items[%d]: duplicate ref %q", i, item.Ref))
		} else {
			refs[item.Ref] = true
		}

		if item.Title == "" {
			errs = append(errs, fmt.Errorf("items[%d]: title is required", i))
		}
		if !domain.ValidItemTypes[item.Type] {
			errs = append(errs, fmt.Errorf("items[%d]: unknown type %q", i, item.Type))
		}
		if item.Priority != nil && *item.Priority < 0 {
			errs = append(errs, fmt.Errorf("items[%d]: priority must not be negative", i))
		}
	}
	return errs
}

func validateDependencies(deps []DependencyImport, itemRefs map[string]bool) []error {
	var errs []error

	for i, dep := range deps {
		if dep.FromRef == "" || dep.ToRef == "" {
			errs = append(errs, fmt.Errorf("dependencies[%d]: from_ref and to_ref are required", i))
			continue
		}
		if dep.FromRef == dep.ToRef {
			errs = append(errs, fmt.Errorf("dependencies[%d]: item %q cannot depend on itself", i, dep.FromRef))
		}
		if !itemRefs[dep.FromRef] {
			errs = append(errs, fmt.Errorf("dependencies[%d]: from_ref %q does not match any item", i, dep.FromRef))
		}
		if !itemRefs[dep.ToRef] {
			errs = append(errs, fmt.Errorf("dependencies[%d]: to_ref %q does not match any item", i, dep.ToRef))
		}
	}
	return errs
}
