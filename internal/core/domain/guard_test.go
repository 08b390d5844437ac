package domain

import "testing"

func TestEvaluateGuard_Unknown_AlwaysSuspends(t *testing.T) {
	for _, req := range []Requirement{RequireNone, RequireSchool, RequireAdmin} {
		if got := EvaluateGuard(StateUnknown, false, req); got != DecisionSuspend {
			t.Errorf("requirement %s: expected suspend during rehydration, got %s", req, got)
		}
	}
}

func TestEvaluateGuard_RequireNone_AlwaysAllows(t *testing.T) {
	states := []SessionState{StateAnonymous, StateAuthenticated, StateAuthenticatedSchool, StateAuthenticatedAdmin}
	for _, state := range states {
		if got := EvaluateGuard(state, false, RequireNone); got != DecisionAllow {
			t.Errorf("state %s: expected allow, got %s", state, got)
		}
	}
}

func TestEvaluateGuard_RequireSchool(t *testing.T) {
	tests := []struct {
		name      string
		state     SessionState
		hasSchool bool
		want      Decision
	}{
		{"anonymous goes to login", StateAnonymous, false, DecisionRedirectLogin},
		{"school allowed", StateAuthenticatedSchool, true, DecisionAllow},
		{"admin without school goes home", StateAuthenticatedAdmin, false, DecisionRedirectHome},
		{"admin with school allowed", StateAuthenticatedAdmin, true, DecisionAllow},
		{"roleless authenticated goes home, never login", StateAuthenticated, false, DecisionRedirectHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateGuard(tt.state, tt.hasSchool, RequireSchool); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEvaluateGuard_RequireAdmin(t *testing.T) {
	tests := []struct {
		name  string
		state SessionState
		want  Decision
	}{
		{"admin allowed", StateAuthenticatedAdmin, DecisionAllow},
		{"anonymous goes to login", StateAnonymous, DecisionRedirectLogin},
		{"school goes home", StateAuthenticatedSchool, DecisionRedirectHome},
		{"roleless authenticated goes home", StateAuthenticated, DecisionRedirectHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateGuard(tt.state, true, RequireAdmin); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestResolveRole_Priority(t *testing.T) {
	if got := ResolveRole(true, true); got != RoleAdmin {
		t.Errorf("admin listing must win over school record, got %s", got)
	}
	if got := ResolveRole(true, false); got != RoleAdmin {
		t.Errorf("expected admin, got %s", got)
	}
	if got := ResolveRole(false, true); got != RoleSchool {
		t.Errorf("expected school, got %s", got)
	}
	if got := ResolveRole(false, false); got != RoleAnonymous {
		t.Errorf("expected anonymous, got %s", got)
	}
}

func TestSessionState_Mapping(t *testing.T) {
	var nilSession *Session
	if got := nilSession.State(); got != StateAnonymous {
		t.Errorf("nil session: expected anonymous, got %s", got)
	}
	if got := (&Session{Role: RoleAdmin}).State(); got != StateAuthenticatedAdmin {
		t.Errorf("expected admin state, got %s", got)
	}
	if got := (&Session{Role: RoleSchool, SchoolID: "s1"}).State(); got != StateAuthenticatedSchool {
		t.Errorf("expected school state, got %s", got)
	}
	if got := (&Session{Role: RoleAnonymous}).State(); got != StateAuthenticated {
		t.Errorf("signed-in roleless identity: expected authenticated, got %s", got)
	}
}

func TestSession_HasSchool(t *testing.T) {
	var nilSession *Session
	if nilSession.HasSchool() {
		t.Error("nil session must not have a school")
	}
	if (&Session{}).HasSchool() {
		t.Error("empty school id must not count as association")
	}
	if !(&Session{SchoolID: "s1"}).HasSchool() {
		t.Error("expected school association")
	}
}
