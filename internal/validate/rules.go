// Package validate holds the declarative per-field rules for user input.
// Fields are checked in declaration order and every failing field
// contributes one entry, so a single response lists every broken rule.
package validate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/tunckiral/pocketledger/internal/apperrors"
)

// Charset shared by usernames and passwords.
var credentialCharset = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*?]+$`)

const charsetMessage = `must match the following: "/^[a-zA-Z0-9!@#$%^&*?]+$/"`

// Field pairs a field name with its rule list. Rules run in order and the
// first failing rule produces the field's single entry.
type Field struct {
	Name  string
	Value any
	Rules []validation.Rule
}

// Apply evaluates every field and returns a ValidationError carrying one
// "<field> <constraint>" entry per failing field, or nil.
func Apply(fields ...Field) error {
	var entries []string
	for _, f := range fields {
		if err := validation.Validate(f.Value, f.Rules...); err != nil {
			entries = append(entries, f.Name+" "+err.Error())
		}
	}
	if len(entries) > 0 {
		return apperrors.Validation(entries)
	}
	return nil
}

// UserID accepts positive integers only. Zero means the field was absent;
// ozzo threshold rules skip zero values, so Required carries the same
// message to keep the absent case a validation failure.
func UserID(v int64) Field {
	return Field{Name: "user_id", Value: v, Rules: []validation.Rule{
		validation.Required.Error("must be greater than or equal to 1"),
		validation.Min(1).Error("must be greater than or equal to 1"),
	}}
}

func Username(v string) Field {
	return Field{Name: "username", Value: v, Rules: []validation.Rule{
		validation.Required.Error("is a required field"),
		validation.Match(credentialCharset).Error(charsetMessage),
		validation.Length(5, 0).Error("must be at least 5 characters"),
	}}
}

func Password(v string) Field {
	return Field{Name: "password", Value: v, Rules: []validation.Rule{
		validation.Required.Error("is a required field"),
		validation.Match(credentialCharset).Error(charsetMessage),
		validation.Length(5, 0).Error("must be at least 5 characters"),
	}}
}

func Email(v string) Field {
	return Field{Name: "email", Value: v, Rules: []validation.Rule{
		validation.Required.Error("is a required field"),
		is.Email.Error("must be a valid email"),
	}}
}

func Name(field, v string) Field {
	return Field{Name: field, Value: v, Rules: []validation.Rule{
		validation.Required.Error("is a required field"),
		validation.Length(1, 100).Error("must be at most 100 characters"),
	}}
}

// ID validates store-assigned identifiers addressed by the client.
func ID(field string, v int64) Field {
	return Field{Name: field, Value: v, Rules: []validation.Rule{
		validation.Required.Error("must be greater than or equal to 1"),
		validation.Min(1).Error("must be greater than or equal to 1"),
	}}
}
