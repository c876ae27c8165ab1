package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khrees2412/quickcv/internal/app"
	"github.com/khrees2412/quickcv/pkg/models"
)

// parseIndex turns a 1-based position typed by the user into a list index
func parseIndex(arg string, length int, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", app.ErrInvalidArgument, arg)
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("%w: %s %d (have %d)", app.ErrNotFound, what, n, length)
	}
	return n - 1, nil
}

// checkValue validates values written to date fields
func checkValue[T any](f models.Field[T], value string) error {
	if !f.IsDate {
		return nil
	}
	if err := models.ValidateDate(value); err != nil {
		return fmt.Errorf("%w: %s: %v", app.ErrInvalidArgument, f.Name, err)
	}
	return nil
}

// parseAssignment splits "field=value"
func parseAssignment(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("%w: expected field=value, got %q", app.ErrInvalidArgument, s)
	}
	return strings.TrimSpace(key), value, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return mutedStyle.Render("-")
	}
	return s
}
