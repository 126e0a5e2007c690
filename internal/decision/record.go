// Package decision normalizes the inputs of the decision helper tools.
//
// Every function here is a pure transform: nothing is stored, and a record is only ever
// the value handed back to the caller.
package decision

import (
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
)

// Record is a decision between exactly two options.
type Record struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// Start validates and trims a decision title and its two options.
func Start(title, optionA, optionB string) (Record, error) {
	rec := Record{
		Title:   strings.TrimSpace(title),
		OptionA: strings.TrimSpace(optionA),
		OptionB: strings.TrimSpace(optionB),
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the record fields without modifying them.
func (r Record) Validate() error {
	var errs []error

	if r.Title == "" {
		errs = append(errs, newValidationError("title", ErrEmptyField))
	}
	if r.OptionA == "" {
		errs = append(errs, newValidationError("optionA", ErrEmptyField))
	}
	if r.OptionB == "" {
		errs = append(errs, newValidationError("optionB", ErrEmptyField))
	}
	if r.OptionA != "" && strings.EqualFold(r.OptionA, r.OptionB) {
		errs = append(errs, newValidationError("optionB", ErrDuplicateOptions))
	}
	if err := ValidateID("id", r.ID); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Normalize re-applies the Start rules to a record supplied back by a caller.
func (r Record) Normalize() (Record, error) {
	rec, err := Start(r.Title, r.OptionA, r.OptionB)
	id := strings.TrimSpace(r.ID)
	if idErr := ValidateID("id", id); idErr != nil {
		return Record{}, errors.Join(err, idErr)
	}
	if err != nil {
		return Record{}, err
	}
	rec.ID = id
	return rec, nil
}

// WithID returns a copy of the record carrying id.
func (r Record) WithID(id string) Record {
	r.ID = id
	return r
}

// Options returns both option labels in order.
func (r Record) Options() [2]string {
	return [2]string{r.OptionA, r.OptionB}
}

// ValidateID accepts an empty id or any textual UUID.
func ValidateID(field, id string) error {
	if id == "" {
		return nil
	}
	if _, err := uuid.FromString(id); err != nil {
		return newValidationError(field, ErrInvalidID)
	}
	return nil
}

// NewID returns a random decision identifier.
func NewID() (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
