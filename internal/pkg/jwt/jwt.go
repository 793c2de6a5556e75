package jwt

import (
	"errors"
	"time"

	"github.com/dayflow-hr/hrms-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidTokenType = errors.New("token is not an access token")

// Claims is the subset of an access token the API relies on.
type Claims struct {
	UserID    string
	Role      user.Role
	CompanyID *string
	ExpiresAt time.Time
}

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	ParseAccessToken(tokenString string) (Claims, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	expiration time.Duration
	tokenAuth  *jwtauth.JWTAuth
	now        func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, expiration time.Duration) Service {
	return &JWTService{
		expiration: expiration,
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:        time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	issuedAt := j.now()
	expiresAt = issuedAt.Add(j.expiration).Unix()

	claims := map[string]interface{}{
		"sub":        u.ID,
		"user_id":    u.ID,
		"company_id": returnValueOrNil(u.CompanyID),
		"role":       string(u.Role),
		"type":       "access",
		"iat":        issuedAt.Unix(),
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ParseAccessToken verifies signature and expiry and extracts the claims.
func (j *JWTService) ParseAccessToken(tokenString string) (Claims, error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return Claims{}, err
	}
	return ClaimsFromToken(token)
}

// ClaimsFromToken reads the access claims from an already verified token.
func ClaimsFromToken(token jwt.Token) (Claims, error) {
	tokenType, ok := token.Get("type")
	if !ok || tokenType != "access" {
		return Claims{}, ErrInvalidTokenType
	}

	userID := token.Subject()
	if userID == "" {
		if v, ok := token.Get("user_id"); ok {
			userID, _ = v.(string)
		}
	}
	if userID == "" {
		return Claims{}, jwt.ErrInvalidJWT()
	}

	claims := Claims{UserID: userID, ExpiresAt: token.Expiration()}
	if v, ok := token.Get("role"); ok {
		if role, ok := v.(string); ok {
			claims.Role = user.Role(role)
		}
	}
	if v, ok := token.Get("company_id"); ok {
		if companyID, ok := v.(string); ok && companyID != "" {
			claims.CompanyID = &companyID
		}
	}
	return claims, nil
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
