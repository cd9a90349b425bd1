package entity

type UserProfile struct {
	Name             string `json:"name"`
	CompanyName      string `json:"companyName"`
	Email            string `json:"email"`
	RegistrationDate int64  `json:"registrationDate"` // unix millis
	IsTrial          bool   `json:"isTrial"`
	TrialStartDate   int64  `json:"trialStartDate,omitempty"`
}

// AuthState holds the stored credential for a registered user. The
// password is kept as a bcrypt hash only.
type AuthState struct {
	IsConfigured bool   `json:"isConfigured"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// UserRecord is one slot of the global users registry, keyed by email.
type UserRecord struct {
	Profile UserProfile `json:"profile"`
	Auth    AuthState   `json:"auth"`
}

// TrialStatus is the result of the trial validity computation. It is a
// pure function of (now, trialStartDate ?? registrationDate).
type TrialStatus struct {
	IsValid   bool `json:"isValid"`
	IsExpired bool `json:"isExpired"`
	DaysLeft  int  `json:"daysLeft"`
}
