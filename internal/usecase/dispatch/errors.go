package dispatch

import (
	"ticketing-notifier/internal/pkg/errs"
)

var (
	// ErrSkipped marks every deliberate decision not to push. The specific reason is one of the errors below.
	ErrSkipped = errs.New("push skipped")

	ErrRecipientNotFound = errs.New("recipient not found")
	ErrNotPushEligible   = errs.New("not a push-eligible role")
	ErrDuplicateDelivery = errs.New("duplicate")
	ErrProfileNotFound   = errs.New("profile not found")

	// ErrMissingRelation aborts a single handler run when a technician, ticket or member is absent.
	ErrMissingRelation = errs.New("missing relationship")
)

var skipReasons = []struct {
	err   error
	label string
}{
	{ErrRecipientNotFound, "recipient_not_found"},
	{ErrNotPushEligible, "not_push_eligible"},
	{ErrDuplicateDelivery, "duplicate"},
	{ErrProfileNotFound, "profile_not_found"},
}

func skip(reason error) error {
	return errs.Mark(reason, ErrSkipped)
}

func skipReason(err error) string {
	for _, r := range skipReasons {
		if errs.Is(err, r.err) {
			return r.label
		}
	}
	return "unknown"
}

func missing(what string, err error) error {
	return errs.Mark(errs.Wrapf(err, "%s not found", what), ErrMissingRelation)
}
