// ABOUTME: Pure navigation guard decisions over session state
// ABOUTME: Mirrors route protection: auth, role checks, and profile ownership

package guard

import "github.com/Nelson-esilva/Trade-Site/internal/client"

// Role names an access level a screen may demand
type Role string

// Recognized roles. Admin is satisfied by either elevated flag.
const (
	RoleAdmin      Role = "admin"
	RoleSuperuser  Role = "superuser"
	RoleTradeAdmin Role = "trade_admin"
)

// Verdict is the guard's decision for a navigation attempt
type Verdict int

const (
	// Allow lets the navigation proceed
	Allow Verdict = iota
	// ShowLoading defers the decision until the session has resolved
	ShowLoading
	// RedirectLogin sends the user to the login screen, remembering
	// where they wanted to go
	RedirectLogin
	// RedirectHome sends the user to the catalog
	RedirectHome
	// RedirectOwnProfile sends the user to their own profile
	RedirectOwnProfile
)

// Session is the slice of store state the guard reads
type Session struct {
	IsAuthenticated bool
	Loading         bool
	User            *client.User
}

// Requirements describes what a screen demands of the session.
// Screens with no demands are never run through the guard.
// RequireAuth false marks a guest-only screen: authenticated users
// are bounced home from it.
type Requirements struct {
	RequireAuth  bool
	AllowedRoles []Role
}

// Decision is the guard's verdict plus the route to return to after a
// login redirect
type Decision struct {
	Verdict  Verdict
	ReturnTo string
}

// Check decides whether the session may enter a guarded screen.
// requested is the route being navigated to; it rides along on a
// login redirect so the user lands back there afterwards.
func Check(sess Session, req Requirements, requested string) Decision {
	if sess.Loading && req.RequireAuth {
		return Decision{Verdict: ShowLoading}
	}

	if req.RequireAuth && !sess.IsAuthenticated {
		return Decision{Verdict: RedirectLogin, ReturnTo: requested}
	}

	if !req.RequireAuth && sess.IsAuthenticated {
		return Decision{Verdict: RedirectHome}
	}

	if len(req.AllowedRoles) > 0 && !hasAnyRole(sess.User, req.AllowedRoles) {
		return Decision{Verdict: RedirectHome}
	}

	return Decision{Verdict: Allow}
}

// CheckProfile decides whether the session may view the given profile.
// Users see their own profile; elevated roles see anyone's.
func CheckProfile(sess Session, username string) Decision {
	if sess.Loading {
		return Decision{Verdict: ShowLoading}
	}

	if !sess.IsAuthenticated {
		return Decision{Verdict: RedirectLogin, ReturnTo: "/profile/" + username}
	}

	if username != "" && sess.User != nil && sess.User.Username != username && !elevated(sess.User) {
		return Decision{Verdict: RedirectOwnProfile}
	}

	return Decision{Verdict: Allow}
}

func hasAnyRole(user *client.User, roles []Role) bool {
	if user == nil {
		return false
	}
	for _, role := range roles {
		switch role {
		case RoleAdmin:
			if user.IsSuperuser || user.IsTradeAdmin {
				return true
			}
		case RoleSuperuser:
			if user.IsSuperuser {
				return true
			}
		case RoleTradeAdmin:
			if user.IsTradeAdmin {
				return true
			}
		}
	}
	return false
}

func elevated(user *client.User) bool {
	return user != nil && (user.IsSuperuser || user.IsTradeAdmin)
}
