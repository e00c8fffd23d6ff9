package types

// TokenClaims holds the identity carried by a bearer token.
type TokenClaims struct {
	UserID uint `json:"user_id"`
}
