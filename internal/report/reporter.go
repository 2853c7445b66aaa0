package report

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/jdelacroix/inkwell/internal/logger"
	inkwellerrors "github.com/jdelacroix/inkwell/pkg/errors"
)

// Reporter is the single process-wide error sink. Every component receives
// the same instance instead of installing its own global handler.
type Reporter struct {
	log *logger.Logger
	dev bool
}

// New creates a Reporter. When dev is true, unexpected errors produce a
// user-facing message; otherwise they are only logged.
func New(log *logger.Logger, dev bool) *Reporter {
	return &Reporter{log: log, dev: dev}
}

// Dev reports whether development surfacing is enabled.
func (r *Reporter) Dev() bool {
	if r == nil {
		return false
	}
	return r.dev
}

// Report logs err according to its category and returns the text that should
// be surfaced to the user, or "" when nothing should be shown. No error is
// fatal; callers continue after reporting.
func (r *Reporter) Report(err error) string {
	if r == nil || err == nil {
		return ""
	}

	var validationErr *inkwellerrors.ValidationError
	if errors.As(err, &validationErr) {
		r.log.Error(err, "validation rejected input")
		return validationErr.Message
	}

	var submitErr *inkwellerrors.SubmitError
	if errors.As(err, &submitErr) {
		r.log.Error(err, "submission failed")
		return "Something went wrong. Please try again."
	}

	var prefsErr *inkwellerrors.PrefsError
	if errors.As(err, &prefsErr) {
		r.log.Error(err, "preference storage failed")
		if r.dev {
			return err.Error()
		}
		return ""
	}

	r.log.Error(err, "unexpected error")
	if r.dev {
		return err.Error()
	}
	return ""
}

// ReportPanic logs a recovered panic with its stack. The process stays alive;
// the caller decides how to resume.
func (r *Reporter) ReportPanic(value any) {
	if r == nil {
		return
	}
	r.log.WithFields(map[string]any{
		"panic": fmt.Sprint(value),
		"stack": string(debug.Stack()),
	}).Error(nil, "recovered from panic")
}
