package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// algorithm is the only signing method this service accepts. Tokens carrying
// any other "alg" value are rejected before their claims are decoded.
const algorithm = "HS256"

type header struct {
	Typ string `json:"typ"`
	Alg string `json:"alg"`
}

// StandardClaims carries the registered claim set from RFC 7519. Temporal
// claims are Unix timestamps; a zero value means the claim is unset.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks the temporal claims against the clock. Unset claims pass.
func (c StandardClaims) Valid() error {
	now := time.Now().Unix()
	if c.ExpiresAt > 0 && now > c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore > 0 && now < c.NotBefore {
		return ErrInvalidToken
	}
	return nil
}

// Service signs and verifies HMAC-SHA256 tokens with a single symmetric key.
type Service struct {
	key []byte
}

// New creates a Service from the given signing key.
func New(key []byte) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{key: key}, nil
}

// NewFromString creates a Service from a string key, typically loaded from
// the environment.
func NewFromString(key string) (*Service, error) {
	return New([]byte(key))
}

// Generate signs the given claims and returns the compact token string.
// Claims may be any JSON-serializable value.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	head, err := json.Marshal(header{Typ: "JWT", Alg: algorithm})
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}
	body, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal claims: %w", err)
	}

	signing := encodeSegment(head) + "." + encodeSegment(body)
	return signing + "." + s.sign(signing), nil
}

// Parse verifies the token signature and algorithm, then unmarshals the
// claims into dst. If dst implements Valid() error its temporal claims are
// checked as well.
func (s *Service) Parse(token string, dst any) error {
	if strings.Count(token, ".") != 2 {
		return ErrInvalidToken
	}
	sep := strings.LastIndexByte(token, '.')
	signing, sig := token[:sep], token[sep+1:]

	// Constant-time comparison so signature checks leak no timing signal.
	if subtle.ConstantTimeCompare([]byte(sig), []byte(s.sign(signing))) != 1 {
		return ErrInvalidSignature
	}

	headSeg, claimsSeg, _ := strings.Cut(signing, ".")

	headRaw, err := decodeSegment(headSeg)
	if err != nil {
		return fmt.Errorf("decode header: %w", err)
	}
	var head header
	if err := json.Unmarshal(headRaw, &head); err != nil {
		return fmt.Errorf("unmarshal header: %w", err)
	}
	if head.Alg != algorithm {
		return ErrUnexpectedSigningMethod
	}

	claimsRaw, err := decodeSegment(claimsSeg)
	if err != nil {
		return fmt.Errorf("decode claims: %w", err)
	}
	if err := json.Unmarshal(claimsRaw, dst); err != nil {
		return fmt.Errorf("unmarshal claims: %w", err)
	}

	if v, ok := dst.(interface{ Valid() error }); ok {
		return v.Valid()
	}
	return nil
}

func (s *Service) sign(signing string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(signing))
	return encodeSegment(mac.Sum(nil))
}

// Token segments use unpadded base64url per RFC 7515.
func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(seg string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(seg)
}
