package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted date format. Empty means unset.
const DateLayout = "2006-01-02"

var validate = validator.New()

// ValidateDate checks a single date value as accepted by date fields
func ValidateDate(value string) error {
	if err := validate.Var(value, "omitempty,datetime="+DateLayout); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", value)
	}
	return nil
}

// Validate checks the format invariants of a resume. Only date fields are
// constrained; free-text fields accept anything.
func (r Resume) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %q is not a YYYY-MM-DD date", fe.Namespace(), fe.Value()))
	}
	return fmt.Errorf("invalid resume: %s", strings.Join(msgs, "; "))
}
