package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"autonomax/config"
	"autonomax/internal/domain/entity"
	"autonomax/internal/domain/service"
	"autonomax/internal/errors"
)

const tokenIssuer = "autonomax"

// strictParser rejects non-canonical base64 in the signature segment.
var strictParser = jwt.NewParser(jwt.WithStrictDecoding())

// Claims is the JWT payload of an access token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds the token service from the access secret and TTL in cfg.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now), nil
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) *jwtService {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}

	return &jwtService{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs an HS256 token for user.
func (s *jwtService) Issue(user *entity.User) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return token, claims.ExpiresAt.Time, nil
}

// Validate verifies the signature first, then expiry and issuer.
func (s *jwtService) Validate(tokenString string) (*service.UserClaims, error) {
	if err := s.verifySignature(tokenString); err != nil {
		return nil, err
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, service.ErrTokenMalformed
	}

	out := &service.UserClaims{
		UserID:    claims.UserID,
		Name:      claims.Name,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}

// verifySignature checks the HMAC over the raw header and payload segments
// before anything is decoded, so any altered byte reports a bad signature.
func (s *jwtService) verifySignature(tokenString string) error {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return service.ErrTokenMalformed
	}

	sig, err := strictParser.DecodeSegment(parts[2])
	if err != nil {
		return service.ErrTokenBadSignature
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, s.secret); err != nil {
		return service.ErrTokenBadSignature
	}

	return nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	default:
		return service.ErrTokenMalformed
	}
}
