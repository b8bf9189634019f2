package domain

// TokenPair is an access token with its companion refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
