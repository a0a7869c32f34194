package entity

// ConfirmationOutcome is the terminal state of a payment confirmation
type ConfirmationOutcome string

// Confirmation outcomes
const (
	OutcomeCredited         ConfirmationOutcome = "credited"
	OutcomeAlreadyProcessed ConfirmationOutcome = "already_processed"
	OutcomeValidationFailed ConfirmationOutcome = "validation_failed"
)

// ConfirmationResult describes what a confirmation did
type ConfirmationResult struct {
	Outcome      ConfirmationOutcome
	Payment      *Payment // New record when credited, existing record when already processed
	CreditsAdded int64
	Balance      int64
}

// Credited reports whether this confirmation applied credits
func (r ConfirmationResult) Credited() bool {
	return r.Outcome == OutcomeCredited
}

// AccountSnapshot is the display view of an account
type AccountSnapshot struct {
	UserID   string
	Credits  int64
	Payments []Payment
}
