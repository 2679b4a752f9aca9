package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItemID maps user input to a full item ID: exact ID first, then
// unique ID prefix, then exact title match (case-insensitive).
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx)
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}

	for _, item := range items {
		if strings.EqualFold(item.Title, input) {
			return item.ID, nil
		}
	}

	return "", fmt.Errorf("item not found: %q", input)
}
