package domain

// SessionState is the route guard's view of the current session.
type SessionState string

const (
	// StateUnknown means session rehydration is still in flight. The guard
	// must suspend, never redirect, while in this state.
	StateUnknown SessionState = "unknown"
	// StateAnonymous means no identity is present at all.
	StateAnonymous SessionState = "anonymous"
	// StateAuthenticated means an identity is signed in but resolved to
	// neither the admin directory nor a school record.
	StateAuthenticated SessionState = "authenticated"
	// StateAuthenticatedSchool means the identity has an associated school.
	StateAuthenticatedSchool SessionState = "authenticated_school"
	// StateAuthenticatedAdmin means the identity is in the admin directory.
	StateAuthenticatedAdmin SessionState = "authenticated_admin"
)

// Requirement is a route's declared access constraint.
type Requirement string

const (
	RequireNone   Requirement = "none"
	RequireSchool Requirement = "require_school"
	RequireAdmin  Requirement = "require_admin"
)

// Decision is the guard's three-valued routing result, plus Suspend for the
// rehydration window.
type Decision string

const (
	DecisionAllow Decision = "allow"
	// DecisionSuspend defers routing until the session state is known.
	DecisionSuspend Decision = "suspend"
	// DecisionRedirectLogin sends an unidentified caller to the login page.
	DecisionRedirectLogin Decision = "redirect_login"
	// DecisionRedirectHome sends an authenticated caller whose role cannot
	// satisfy the requirement to the public home page. Routing them back
	// through login would loop: their credentials will never satisfy the
	// role requirement.
	DecisionRedirectHome Decision = "redirect_home"
)

// EvaluateGuard applies the route guard policy. hasSchool is the independent
// school association of the session's email; an admin with a school record
// may still access school-scoped routes, an admin without one may not.
func EvaluateGuard(state SessionState, hasSchool bool, req Requirement) Decision {
	if state == StateUnknown {
		return DecisionSuspend
	}
	switch req {
	case RequireSchool:
		switch state {
		case StateAnonymous:
			return DecisionRedirectLogin
		case StateAuthenticatedSchool:
			return DecisionAllow
		case StateAuthenticatedAdmin:
			if hasSchool {
				return DecisionAllow
			}
			return DecisionRedirectHome
		default:
			return DecisionRedirectHome
		}
	case RequireAdmin:
		switch state {
		case StateAuthenticatedAdmin:
			return DecisionAllow
		case StateAnonymous:
			return DecisionRedirectLogin
		default:
			return DecisionRedirectHome
		}
	default: // RequireNone
		return DecisionAllow
	}
}
