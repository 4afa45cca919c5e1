// Package form validates user-submitted fields before anything reaches the
// database. Violations are aggregated so a caller sees every problem at once.
package form

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

type Violation struct {
	Field       string
	Description string
}

// Errors is a non-empty set of violations. Use Checker to build one.
type Errors []Violation

func (e Errors) Error() string {
	var missing, other []string
	for _, v := range e {
		if v.Description == msgRequired {
			missing = append(missing, v.Field)
		} else {
			other = append(other, v.Description)
		}
	}
	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "please fill in all fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, other...)
	return strings.Join(parts, "; ")
}

// GRPCStatus lets status.FromError and status.Code see through Errors.
func (e Errors) GRPCStatus() *status.Status {
	st := status.New(codes.InvalidArgument, e.Error())
	br := &errdetails.BadRequest{}
	for _, v := range e {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}
	if withDetails, err := st.WithDetails(br); err == nil {
		return withDetails
	}
	return st
}

const msgRequired = "required"

type Checker struct {
	errs Errors
}

// Required records every empty (after trimming) value. Fields are checked in
// the order given so the aggregated message is stable.
func (c *Checker) Required(fields ...Field) *Checker {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			c.errs = append(c.errs, Violation{Field: f.Name, Description: msgRequired})
		}
	}
	return c
}

func (c *Checker) Email(name, v string) *Checker {
	if v = strings.TrimSpace(v); v != "" && !emailRe.MatchString(v) {
		c.errs = append(c.errs, Violation{Field: name, Description: "please enter a valid email address"})
	}
	return c
}

func (c *Checker) Phone(name, v string) *Checker {
	if v = strings.TrimSpace(v); v != "" && !phoneRe.MatchString(strings.ReplaceAll(v, " ", "")) {
		c.errs = append(c.errs, Violation{Field: name, Description: "please enter a valid phone number"})
	}
	return c
}

func (c *Checker) Password(name, v string, min int) *Checker {
	if v != "" && utf8.RuneCountInString(v) < min {
		c.errs = append(c.errs, Violation{Field: name, Description: "password too short"})
	}
	return c
}

// Check adds a violation when ok is false.
func (c *Checker) Check(ok bool, name, description string) *Checker {
	if !ok {
		c.errs = append(c.errs, Violation{Field: name, Description: description})
	}
	return c
}

// Err returns nil when nothing was violated.
func (c *Checker) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

type Field struct {
	Name  string
	Value string
}

func F(name, value string) Field { return Field{Name: name, Value: value} }
