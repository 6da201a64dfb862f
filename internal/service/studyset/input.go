package studyset

import (
	"strings"

	"github.com/heartmarshall/practice-text/internal/domain"
	"golang.org/x/text/language"
)

// ImportInput holds the parameters for importing a study set.
type ImportInput struct {
	Text string
	// Language is a BCP 47 tag such as "id" or "en". Empty selects the
	// catalog's default language.
	Language    string
	RandomOrder bool
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if lang := strings.TrimSpace(i.Language); lang != "" {
		if _, err := language.Parse(lang); err != nil {
			errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language tag"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
