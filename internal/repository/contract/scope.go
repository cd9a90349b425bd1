package contract

// Scope identifies whose collections a repository call addresses.
// Every per-user collection is stored under a key derived from the
// scope, so two different emails can never collide and guest data
// stays separate from any account.
type Scope struct {
	email string
}

func UserScope(email string) Scope { return Scope{email: email} }
func GuestScope() Scope            { return Scope{} }

func (s Scope) Email() string { return s.email }
func (s Scope) IsGuest() bool { return s.email == "" }
