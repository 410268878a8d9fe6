package domain

import "strings"

// User is a library member record.
type User struct {
	ID       int64
	UserName string
	IDProof  string
	IDType   string
	Mobile   int64
}

// UserInput carries the fields of a create request. Nil means the field was
// absent from the request.
type UserInput struct {
	ID       *int64
	UserName *string
	IDProof  *string
	IDType   *string
	Mobile   *int64
}

// FieldError names a single rejected field.
type FieldError struct {
	Field   string
	Message string
}

// Validate checks the input and returns every failed rule in field order.
func (in UserInput) Validate() []FieldError {
	var errs []FieldError

	if in.ID != nil && *in.ID <= 0 {
		errs = append(errs, FieldError{Field: "userId", Message: "must be greater than 0"})
	}
	errs = appendRequiredText(errs, "userName", in.UserName)
	errs = appendRequiredText(errs, "idProof", in.IDProof)
	errs = appendRequiredText(errs, "idType", in.IDType)

	switch {
	case in.Mobile == nil:
		errs = append(errs, FieldError{Field: "mobile", Message: "must not be null"})
	case *in.Mobile <= 0:
		errs = append(errs, FieldError{Field: "mobile", Message: "must be greater than 0"})
	}

	return errs
}

// User builds the record to persist, keeping text fields as given. Call only
// after Validate returned no errors.
func (in UserInput) User() User {
	user := User{
		UserName: deref(in.UserName),
		IDProof:  deref(in.IDProof),
		IDType:   deref(in.IDType),
	}
	if in.ID != nil {
		user.ID = *in.ID
	}
	if in.Mobile != nil {
		user.Mobile = *in.Mobile
	}
	return user
}

func appendRequiredText(errs []FieldError, field string, value *string) []FieldError {
	if value == nil {
		return append(errs, FieldError{Field: field, Message: "must not be null"})
	}
	if strings.TrimSpace(*value) == "" {
		return append(errs, FieldError{Field: field, Message: "must not be blank"})
	}
	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
