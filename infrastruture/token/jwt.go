package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/dgrijalva/jwt-go"
)

var _ i.Tokenizer = &JwtService{}

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
	ErrWrongIssuer      = errors.New("token issued by another issuer")
	ErrMissingSubject   = errors.New("token has no subject")
)

// JwtService issues and validates HS256 tokens naming the maze owner in the subject claim.
type JwtService struct {
	secretKey []byte
	issuer    string
}

// NewJwtService creates a new JWT Service with the provided configuration.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate creates a token for subject that expires after expTime.
func (s *JwtService) Generate(subject string, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.StandardClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(expTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// Subject parses and validates a token, returning its subject.
func (s *JwtService) Subject(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.getSigningKey)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return "", ErrWrongIssuer
	}

	if claims.Subject == "" {
		return "", ErrMissingSubject
	}

	return claims.Subject, nil
}

// getSigningKey returns the signing key for token validation.
func (s *JwtService) getSigningKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedMethod
	}
	return s.secretKey, nil
}
