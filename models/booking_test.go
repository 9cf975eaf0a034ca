package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusCancelled},
		{StatusPending, StatusNoShow},
		{StatusConfirmed, StatusInProgress},
		{StatusConfirmed, StatusCancelled},
		{StatusConfirmed, StatusNoShow},
		{StatusInProgress, StatusCompleted},
		{StatusInProgress, StatusCancelled},
		{StatusInProgress, StatusNoShow},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{StatusPending, StatusInProgress},
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusCompleted},
		{StatusCompleted, StatusCancelled},
		{StatusCompleted, StatusPending},
		{StatusCancelled, StatusConfirmed},
		{StatusNoShow, StatusPending},
		{StatusConfirmed, StatusPending},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow} {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "booked", "PENDING", "done"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestIsActiveStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted} {
		if !IsActiveStatus(s) {
			t.Errorf("expected %q to occupy its interval", s)
		}
	}
	for _, s := range []string{StatusCancelled, StatusNoShow} {
		if IsActiveStatus(s) {
			t.Errorf("expected %q to release its interval", s)
		}
	}
}
