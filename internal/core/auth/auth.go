// Package auth defines the authentication collaborator's capability surface.
// The exploration and chat cores receive a read-only Snapshot at construction;
// they never depend on authentication state for their own correctness.
package auth

import "context"

// Snapshot is a point-in-time, read-only view of the signed-in user.
type Snapshot struct {
	LoggedIn  bool
	Email     string
	FirstName string
	LastName  string
}

// Anonymous is the snapshot used when nobody is signed in.
func Anonymous() Snapshot {
	return Snapshot{}
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string
	Password string
}

// SignupData are the registration inputs.
type SignupData struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Provider is the authentication collaborator. Implementations own any token
// caching; callers only see snapshots.
type Provider interface {
	IsAuthenticated() bool
	Snapshot() Snapshot
	Login(ctx context.Context, creds Credentials) (Snapshot, error)
	Signup(ctx context.Context, data SignupData) (Snapshot, error)
	Logout() error
}
