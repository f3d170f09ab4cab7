package github

import (
	"slices"

	"github.com/jmgilman/ghrest/github/field"
)

// CodeOwnersErrorFields holds the attributes of a CodeOwnersError.
type CodeOwnersErrorFields struct {
	Line       int
	Column     int
	Kind       string
	Source     string
	Suggestion *string
	Message    string
	Path       string
}

// CodeOwnersError is one syntax error GitHub found in a CODEOWNERS file.
type CodeOwnersError struct {
	f CodeOwnersErrorFields
}

// NewCodeOwnersError returns a CodeOwnersError with the given attributes.
func NewCodeOwnersError(f CodeOwnersErrorFields) *CodeOwnersError {
	return &CodeOwnersError{f: f}
}

// DecodeCodeOwnersError builds a CodeOwnersError from its JSON object.
func DecodeCodeOwnersError(obj field.Object) (*CodeOwnersError, error) {
	return NewCodeOwnersError(CodeOwnersErrorFields{
		Line:       obj.Int("line", 0),
		Column:     obj.Int("column", 0),
		Kind:       obj.StringValue("kind"),
		Source:     obj.StringValue("source"),
		Suggestion: obj.String("suggestion"),
		Message:    obj.StringValue("message"),
		Path:       obj.StringValue("path"),
	}), nil
}

// Line returns the 1-based line of the error.
func (e *CodeOwnersError) Line() int {
	return e.f.Line
}

// Column returns the 1-based column of the error.
func (e *CodeOwnersError) Column() int {
	return e.f.Column
}

// Kind returns the error kind, such as "Invalid pattern".
func (e *CodeOwnersError) Kind() string {
	return e.f.Kind
}

// Source returns the offending line.
func (e *CodeOwnersError) Source() string {
	return e.f.Source
}

// Suggestion returns a suggested fix, or nil.
func (e *CodeOwnersError) Suggestion() *string {
	return e.f.Suggestion
}

// Message returns the full diagnostic.
func (e *CodeOwnersError) Message() string {
	return e.f.Message
}

// Path returns the path of the CODEOWNERS file.
func (e *CodeOwnersError) Path() string {
	return e.f.Path
}
// CodeOwnersErrors is the list of CODEOWNERS errors of a repository. An
// empty list means the file is valid.
type CodeOwnersErrors struct {
	errors []*CodeOwnersError
}

// NewCodeOwnersErrors returns a CodeOwnersErrors holding errs.
func NewCodeOwnersErrors(errs []*CodeOwnersError) *CodeOwnersErrors {
	return &CodeOwnersErrors{errors: slices.Clone(errs)}
}

// DecodeCodeOwnersErrors builds a CodeOwnersErrors from the endpoint's
// {"errors": [...]} object.
func DecodeCodeOwnersErrors(obj field.Object) (*CodeOwnersErrors, error) {
	d := newDecoder("CodeOwnersErrors", obj)
	errs := readList(d, "errors", DecodeCodeOwnersError)
	if d.err != nil {
		return nil, d.err
	}
	return &CodeOwnersErrors{errors: errs}, nil
}

// Errors returns the errors in file order.
func (c *CodeOwnersErrors) Errors() []*CodeOwnersError {
	return slices.Clone(c.errors)
}

// Len returns the number of errors.
func (c *CodeOwnersErrors) Len() int {
	return len(c.errors)
}
