package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidCredential covers absent, malformed, badly signed and expired tokens.
var ErrInvalidCredential = errors.New("invalid credential")

// Claims is the identity extracted from a verified bearer token.
type Claims struct {
	UserId       uuid.UUID
	EmployeeCode string
	Name         string
	Role         string
}

// Verifier issues and verifies HMAC-signed bearer tokens. It is stateless;
// the department check happens against the stored profile, not the token.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret string, ttl time.Duration) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (v *Verifier) Issue(userId uuid.UUID, employeeCode, name, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":       userId.String(),
		"employee_code": employeeCode,
		"name":          name,
		"role":          role,
		"iat":           now.Unix(),
		"exp":           now.Add(v.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *Verifier) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrInvalidCredential
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredential
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredential
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredential
	}

	userIdStr, _ := mapClaims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return nil, ErrInvalidCredential
	}

	employeeCode, _ := mapClaims["employee_code"].(string)
	name, _ := mapClaims["name"].(string)
	role, _ := mapClaims["role"].(string)

	return &Claims{
		UserId:       userId,
		EmployeeCode: employeeCode,
		Name:         name,
		Role:         role,
	}, nil
}
