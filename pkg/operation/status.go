package operation

import "fmt"

// RejectionMessage is shown when requested cannot start because running is
// still in flight
func RejectionMessage(requested, running Record) string {
	return fmt.Sprintf("%s %s is already running.", requested.ErrorMessage, running.OngoingMessage)
}

// FailureMessage renders a failed run of rec
func FailureMessage(rec Record, err error) string {
	if err == nil {
		return rec.ErrorMessage
	}
	return fmt.Sprintf("%s %s", rec.ErrorMessage, err.Error())
}
