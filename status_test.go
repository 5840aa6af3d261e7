package solstudio

import "testing"

func TestPaymentStatusString(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusApproving, "approving"},
		{StatusConfirming, "confirming"},
		{StatusSuccess, "success"},
		{StatusError, "error"},
		{PaymentStatus(200), "idle"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("PaymentStatus(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestPaymentStatusInFlight(t *testing.T) {
	inFlight := map[PaymentStatus]bool{
		StatusIdle:       false,
		StatusApproving:  true,
		StatusConfirming: true,
		StatusSuccess:    false,
		StatusError:      false,
	}

	for status, want := range inFlight {
		if got := status.InFlight(); got != want {
			t.Errorf("%v.InFlight() = %v, want %v", status, got, want)
		}
	}
}
