package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Validate checks every record against its field constraints and rejects
// duplicate person ids. Links to unknown people are not an error here; see
// DanglingLinks.
func (d *Dataset) Validate() error {
	var problems []string
	duplicate := false

	seen := make(map[string]bool, len(d.People))
	for i, n := range d.People {
		if err := validate.Struct(n); err != nil {
			problems = append(problems, describe(fmt.Sprintf("people[%d] %s", i, n.ID), err))
		}
		if n.ID != "" && seen[n.ID] {
			problems = append(problems, fmt.Sprintf("people[%d] %s: %v", i, n.ID, ErrDuplicateID))
			duplicate = true
		}
		seen[n.ID] = true
	}
	for i, e := range d.Links {
		if err := validate.Struct(e); err != nil {
			problems = append(problems, describe(fmt.Sprintf("links[%d] %s->%s", i, e.Source, e.Target), err))
		}
	}
	for i, p := range d.Projects {
		if err := validate.Struct(p); err != nil {
			problems = append(problems, describe(fmt.Sprintf("projects[%d] %s", i, p.ID), err))
		}
	}
	for i, m := range d.Timeline {
		if err := validate.Struct(m); err != nil {
			problems = append(problems, describe(fmt.Sprintf("timeline[%d]", i), err))
		}
	}

	if len(problems) > 0 {
		err := errors.Newf("invalid dataset: %s", strings.Join(problems, "; "))
		if duplicate {
			err = errors.Mark(err, ErrDuplicateID)
		}
		return err
	}
	return nil
}

func describe(where string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return where + ": " + err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return where + ": " + strings.Join(msgs, ", ")
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number", field)
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
