// ABOUTME: Tests for navigation guard decisions
// ABOUTME: Table-driven over session states, requirements, and profile ownership

package guard

import (
	"testing"

	"github.com/Nelson-esilva/Trade-Site/internal/client"
)

func TestCheck(t *testing.T) {
	authed := Session{IsAuthenticated: true, User: &client.User{Username: "maria"}}
	anon := Session{}
	admin := Session{IsAuthenticated: true, User: &client.User{Username: "root", IsSuperuser: true}}
	tradeAdmin := Session{IsAuthenticated: true, User: &client.User{Username: "mod", IsTradeAdmin: true}}

	tests := []struct {
		name      string
		sess      Session
		req       Requirements
		requested string
		want      Verdict
		returnTo  string
	}{
		{
			name:      "loading defers protected routes",
			sess:      Session{Loading: true},
			req:       Requirements{RequireAuth: true},
			requested: "/my-items",
			want:      ShowLoading,
		},
		{
			name: "loading does not defer guest-only routes",
			sess: Session{Loading: true},
			req:  Requirements{RequireAuth: false},
			want: Allow,
		},
		{
			name:      "anonymous user bounced to login with return route",
			sess:      anon,
			req:       Requirements{RequireAuth: true},
			requested: "/offers",
			want:      RedirectLogin,
			returnTo:  "/offers",
		},
		{
			name: "authenticated user allowed on protected route",
			sess: authed,
			req:  Requirements{RequireAuth: true},
			want: Allow,
		},
		{
			name: "authenticated user bounced home from guest-only route",
			sess: authed,
			req:  Requirements{RequireAuth: false},
			want: RedirectHome,
		},
		{
			name: "anonymous user allowed on guest-only route",
			sess: anon,
			req:  Requirements{RequireAuth: false},
			want: Allow,
		},
		{
			name: "regular user lacks admin role",
			sess: authed,
			req:  Requirements{RequireAuth: true, AllowedRoles: []Role{RoleAdmin}},
			want: RedirectHome,
		},
		{
			name: "superuser satisfies admin role",
			sess: admin,
			req:  Requirements{RequireAuth: true, AllowedRoles: []Role{RoleAdmin}},
			want: Allow,
		},
		{
			name: "trade admin satisfies admin role",
			sess: tradeAdmin,
			req:  Requirements{RequireAuth: true, AllowedRoles: []Role{RoleAdmin}},
			want: Allow,
		},
		{
			name: "trade admin does not satisfy superuser role",
			sess: tradeAdmin,
			req:  Requirements{RequireAuth: true, AllowedRoles: []Role{RoleSuperuser}},
			want: RedirectHome,
		},
		{
			name: "any listed role suffices",
			sess: tradeAdmin,
			req:  Requirements{RequireAuth: true, AllowedRoles: []Role{RoleSuperuser, RoleTradeAdmin}},
			want: Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.sess, tt.req, tt.requested)
			if got.Verdict != tt.want {
				t.Errorf("verdict = %v, want %v", got.Verdict, tt.want)
			}
			if got.ReturnTo != tt.returnTo {
				t.Errorf("returnTo = %q, want %q", got.ReturnTo, tt.returnTo)
			}
		})
	}
}

func TestCheckProfile(t *testing.T) {
	maria := Session{IsAuthenticated: true, User: &client.User{Username: "maria"}}
	admin := Session{IsAuthenticated: true, User: &client.User{Username: "root", IsSuperuser: true}}

	tests := []struct {
		name     string
		sess     Session
		username string
		want     Verdict
	}{
		{"loading defers", Session{Loading: true}, "maria", ShowLoading},
		{"anonymous bounced to login", Session{}, "maria", RedirectLogin},
		{"own profile allowed", maria, "maria", Allow},
		{"empty username means own profile", maria, "", Allow},
		{"someone else's profile bounced to own", maria, "joao", RedirectOwnProfile},
		{"superuser sees any profile", admin, "joao", Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckProfile(tt.sess, tt.username)
			if got.Verdict != tt.want {
				t.Errorf("verdict = %v, want %v", got.Verdict, tt.want)
			}
		})
	}
}
