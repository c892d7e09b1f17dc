// Package dberr classifies storage-engine write failures into domain
// conflicts. Classification is pure: given an entity's constraint table and
// a raw error it decides between a uniqueness conflict, a referential
// conflict, or neither, and attributes the conflict to a field when the
// engine's error permits it.
package dberr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind int

const (
	KindUnique Kind = iota
	KindForeignKey
)

// Conflict is a client-caused write failure. Message is safe to return to
// the caller; Err keeps the raw engine error for logging only.
type Conflict struct {
	Entity  string
	Field   string
	Kind    Kind
	Message string
	Err     error
}

func (c *Conflict) Error() string { return c.Message }

func (c *Conflict) Unwrap() error { return c.Err }

// UniqueRule describes one declared unique constraint. Match substrings are
// checked against the engine error text to pick the field-specific message;
// they cover both postgres constraint names and sqlite's column form.
type UniqueRule struct {
	Field   string
	Match   []string
	Message string
}

type FKRule struct {
	Field   string
	Match   []string
	Message string
}

// Table is the declarative constraint contract for one entity. Rule order
// is attribution order: the first rule whose match hits wins.
type Table struct {
	Entity      string
	Unique      []UniqueRule
	ForeignKeys []FKRule
}

var (
	Users = Table{
		Entity: "user",
		Unique: []UniqueRule{
			{Field: "email", Match: []string{"email"}, Message: "Email already registered"},
			{Field: "national_id", Match: []string{"national_id"}, Message: "National ID already registered"},
		},
		// Inbound restrict-on-delete reference from certificates.
		ForeignKeys: []FKRule{
			{Field: "user_id", Match: []string{"certificate"}, Message: "User is referenced by existing certificates"},
		},
	}

	Companies = Table{
		Entity: "company",
		Unique: []UniqueRule{
			{Field: "tax_id", Match: []string{"tax_id"}, Message: "Tax ID already registered"},
		},
		// Inbound restrict-on-delete reference from job postings.
		ForeignKeys: []FKRule{
			{Field: "company_id", Match: []string{"job"}, Message: "Company is referenced by existing job postings"},
		},
	}

	JobPostings = Table{
		Entity: "job_posting",
		ForeignKeys: []FKRule{
			{Field: "company_id", Match: []string{"company"}, Message: "Company not found"},
		},
	}

	Courses = Table{
		Entity: "course",
		// No FKs of its own, but certificates reference courses with
		// restrict-on-delete, so deletes can still raise a referential
		// conflict attributed to the inbound reference.
		ForeignKeys: []FKRule{
			{Field: "course_id", Match: []string{"certificate"}, Message: "Course is referenced by existing certificates"},
		},
	}

	Certificates = Table{
		Entity: "certificate",
		ForeignKeys: []FKRule{
			{Field: "user_id", Match: []string{"user"}, Message: "User not found"},
			{Field: "course_id", Match: []string{"course"}, Message: "Course not found"},
		},
	}
)

// Translate returns a *Conflict when err is a recognized constraint
// violation for the entity described by t, and nil otherwise. Unrecognized
// errors are the caller's problem: they must be logged in full and surfaced
// only as a generic failure.
func Translate(t Table, err error) *Conflict {
	if err == nil {
		return nil
	}

	text := errorText(err)

	switch {
	case isUniqueViolation(err, text):
		for _, rule := range t.Unique {
			if matchAny(text, rule.Match) {
				return &Conflict{Entity: t.Entity, Field: rule.Field, Kind: KindUnique, Message: rule.Message, Err: err}
			}
		}
		return &Conflict{Entity: t.Entity, Kind: KindUnique, Message: "Duplicate value violates a unique constraint", Err: err}

	case isForeignKeyViolation(err, text):
		for _, rule := range t.ForeignKeys {
			if matchAny(text, rule.Match) {
				return &Conflict{Entity: t.Entity, Field: rule.Field, Kind: KindForeignKey, Message: rule.Message, Err: err}
			}
		}
		// Engines do not always name the constraint; fall back to the
		// first declared foreign key.
		if len(t.ForeignKeys) > 0 {
			rule := t.ForeignKeys[0]
			return &Conflict{Entity: t.Entity, Field: rule.Field, Kind: KindForeignKey, Message: rule.Message, Err: err}
		}
		return &Conflict{Entity: t.Entity, Kind: KindForeignKey, Message: "Referenced row does not exist", Err: err}
	}

	return nil
}

// NotFound builds the referential conflict reported when an eagerly
// resolved reference is missing, before any write is attempted.
func NotFound(t Table, field string) *Conflict {
	for _, rule := range t.ForeignKeys {
		if rule.Field == field {
			return &Conflict{Entity: t.Entity, Field: rule.Field, Kind: KindForeignKey, Message: rule.Message}
		}
	}
	return &Conflict{Entity: t.Entity, Field: field, Kind: KindForeignKey, Message: "Referenced row does not exist"}
}

func errorText(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.ToLower(pgErr.Message + " " + pgErr.ConstraintName + " " + pgErr.Detail)
	}
	return strings.ToLower(err.Error())
}

func isUniqueViolation(err error, text string) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(text, "unique constraint failed") ||
		strings.Contains(text, "duplicate key value violates unique constraint")
}

func isForeignKeyViolation(err error, text string) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(text, "foreign key constraint failed") ||
		strings.Contains(text, "violates foreign key constraint")
}

func matchAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
