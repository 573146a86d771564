// Package operationreport collects the errors of loading many GraphQL documents,
// so a run reports every broken document at once instead of stopping at the first.
package operationreport

import (
	"fmt"

	"github.com/pkg/errors"
)

type Report struct {
	InternalErrors []error
	ExternalErrors []ExternalError
}

// ExternalError is a problem in a user supplied document.
// Line and Column are 1-based, zero if unknown.
type ExternalError struct {
	Message  string
	Location string
	Line     int
	Column   int
}

func (e ExternalError) Error() string {
	switch {
	case e.Location == "":
		return e.Message
	case e.Line == 0:
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	default:
		return fmt.Sprintf("%s:%d:%d: %s", e.Location, e.Line, e.Column, e.Message)
	}
}

func (r Report) Error() string {
	out := ""
	for i := range r.InternalErrors {
		if i != 0 {
			out += "\n"
		}
		out += fmt.Sprintf("internal: %s", r.InternalErrors[i].Error())
	}
	if len(out) > 0 && len(r.ExternalErrors) > 0 {
		out += "\n"
	}
	for i := range r.ExternalErrors {
		if i != 0 {
			out += "\n"
		}
		out += fmt.Sprintf("external: %s", r.ExternalErrors[i].Error())
	}
	return out
}

func (r *Report) HasErrors() bool {
	return len(r.InternalErrors) > 0 || len(r.ExternalErrors) > 0
}

func (r *Report) Reset() {
	r.InternalErrors = r.InternalErrors[:0]
	r.ExternalErrors = r.ExternalErrors[:0]
}

func (r *Report) AddInternalError(err error) {
	r.InternalErrors = append(r.InternalErrors, err)
}

func (r *Report) AddExternalError(externalError ExternalError) {
	r.ExternalErrors = append(r.ExternalErrors, externalError)
}

type FormatExternalErrorMessage func(report *Report) string

// ExternalErrorMessage formats err with formatFunction if err is or wraps a Report.
func ExternalErrorMessage(err error, formatFunction FormatExternalErrorMessage) (message string, ok bool) {
	var report Report
	if errors.As(err, &report) {
		msg := formatFunction(&report)
		return msg, true
	}
	return "", false
}
