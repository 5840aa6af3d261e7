package solstudio

// PaymentStatus is the single observable state of the payment flow. It is
// transitioned only by the orchestrator's named operations; the legal edges
// are StatusIdle -> StatusApproving -> StatusIdle | StatusError for the
// silent approval and StatusIdle -> StatusConfirming -> StatusSuccess |
// StatusError for the explicit pay step. StatusError is sticky: it holds,
// with its reason, until the next operation starts.
type PaymentStatus uint8

const (
	// StatusIdle means no payment operation is running or pending.
	StatusIdle PaymentStatus = iota

	// StatusApproving means an allowance-granting call is outstanding.
	StatusApproving

	// StatusConfirming means a fee transfer is outstanding.
	StatusConfirming

	// StatusSuccess means the fee transfer confirmed and deployment ran.
	StatusSuccess

	// StatusError means the last operation failed; the reason is retained.
	StatusError
)

// String returns the display name of the status.
func (s PaymentStatus) String() string {
	switch s {
	case StatusApproving:
		return "approving"
	case StatusConfirming:
		return "confirming"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// InFlight reports whether a provider call is outstanding for this status.
// Callers should disable payment affordances while it is true.
func (s PaymentStatus) InFlight() bool {
	return s == StatusApproving || s == StatusConfirming
}
