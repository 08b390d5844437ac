package domain

import "testing"

func TestRegistrationStatus_IsValid(t *testing.T) {
	for _, s := range []RegistrationStatus{StatusPending, StatusApproved, StatusRejected} {
		if !s.IsValid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []RegistrationStatus{"", "archived", "PENDING", "done"} {
		if s.IsValid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestRegistrationStatus_AllPairsReachable(t *testing.T) {
	statuses := []RegistrationStatus{StatusPending, StatusApproved, StatusRejected}
	for _, from := range statuses {
		for _, to := range statuses {
			if !from.CanTransitionTo(to) {
				t.Errorf("transition %s -> %s should be permitted", from, to)
			}
		}
	}
}

func TestRegistrationStatus_UnknownStatusNotReachable(t *testing.T) {
	if StatusPending.CanTransitionTo("archived") {
		t.Error("transition to unknown status should not be permitted")
	}
	if RegistrationStatus("archived").CanTransitionTo(StatusApproved) {
		t.Error("transition from unknown status should not be permitted")
	}
}

func TestCountByStatus(t *testing.T) {
	regs := []*Registration{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusApproved},
		{Status: StatusRejected},
	}

	stats := CountByStatus(regs)

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	if stats.Pending != 2 || stats.Approved != 1 || stats.Rejected != 1 {
		t.Errorf("unexpected breakdown: %+v", stats)
	}
}

func TestCountByStatus_Empty(t *testing.T) {
	stats := CountByStatus(nil)
	if stats.Total != 0 || stats.Pending != 0 || stats.Approved != 0 || stats.Rejected != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}
