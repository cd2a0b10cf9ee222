// Package gate implements the profile-gating navigation policy: the rules
// that decide whether a session may proceed to a route or must be redirected
// to the landing page, the dashboard, or the profile-completion flow.
//
// The policy is a pure function so it can be applied uniformly from the
// navigation endpoint and from server-side middleware, and re-evaluated on
// every route change rather than once at login.
package gate

// Well-known client routes the policy reasons about.
const (
	RouteLanding         = "/"
	RouteDashboard       = "/dashboard"
	RouteCompleteProfile = "/complete-profile"
)

// Session is the authenticated-user snapshot relevant to navigation.
// A nil *Session means no authenticated session is present.
type Session struct {
	UserID              string
	HasCompletedProfile bool
}

// Action says what the client should do with the requested navigation.
type Action string

const (
	Allow    Action = "allow"
	Redirect Action = "redirect"
)

// Decision is the outcome of the policy for one (route, session) pair.
// Target is only set when Act is Redirect.
type Decision struct {
	Act    Action `json:"action"`
	Target string `json:"target,omitempty"`
}

func allow() Decision {
	return Decision{Act: Allow}
}

func redirect(target string) Decision {
	return Decision{Act: Redirect, Target: target}
}

// IsProtected reports whether a route requires an authenticated session.
// Only the public landing route is reachable without one.
func IsProtected(route string) bool {
	return route != RouteLanding
}

// Decide evaluates the gating decision table in order:
//
//  1. no session on a protected route          -> redirect to landing
//  2. session on the landing route             -> redirect to dashboard,
//     or to profile completion when the profile is incomplete
//  3. session with incomplete profile anywhere
//     other than completion or landing         -> redirect to profile completion
//  4. otherwise                                -> allow
func Decide(route string, session *Session) Decision {
	if session == nil {
		if IsProtected(route) {
			return redirect(RouteLanding)
		}
		return allow()
	}

	if route == RouteLanding {
		if session.HasCompletedProfile {
			return redirect(RouteDashboard)
		}
		return redirect(RouteCompleteProfile)
	}

	if !session.HasCompletedProfile && route != RouteCompleteProfile {
		return redirect(RouteCompleteProfile)
	}

	return allow()
}
