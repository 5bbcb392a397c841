package usecases

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenPair is an access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenService issues and refreshes JWT token pairs.
type TokenService interface {
	GeneratePair(userID uint, role string) (*TokenPair, error)
	RefreshPair(refreshToken string) (*TokenPair, error)
}

// PasswordGenerator produces the random initial password for technician
// accounts created by an admin.
type PasswordGenerator interface {
	Generate(length int) (string, error)
}

// CredentialMailer emails a newly created technician their login details.
type CredentialMailer interface {
	SendTechnicianCredentials(to, name, password string) error
}
