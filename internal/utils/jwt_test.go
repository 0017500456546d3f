package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-tracker/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "wallet-tracker-test"
	testSignKey = "test-sign-key"
)

var testUser = models.User{
	UserID: "0190b1c2-aaaa-7bbb-8ccc-000000000001",
	Email:  "a@x.com",
	Name:   "Ann",
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, testUser.UserID, parsed.UserID)
	assert.Equal(t, testUser.Email, parsed.Email)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser, tt.duration, tt.signKey)
			require.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, "different-key", testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, "someone-else")
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser, -time.Second, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}

// signSessionToken issues a token with an explicit issuance time so tests can
// place its expiry anywhere relative to the current moment.
func signSessionToken(t *testing.T, issuedAt time.Time, lifetime time.Duration) string {
	t.Helper()

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   testUser.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
		},
		Email: testUser.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return signed
}

func TestValidateAndParseJWTToken_SevenDayLifetimeBoundary(t *testing.T) {
	const lifetime = 168 * time.Hour

	t.Run("one second before expiry succeeds", func(t *testing.T) {
		issuedAt := time.Now().Add(-lifetime).Add(time.Second)
		signed := signSessionToken(t, issuedAt, lifetime)

		parsed, err := ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, testUser.UserID, parsed.UserID)
	})

	t.Run("one second past expiry fails", func(t *testing.T) {
		issuedAt := time.Now().Add(-lifetime).Add(-time.Second)
		signed := signSessionToken(t, issuedAt, lifetime)

		_, err := ValidateAndParseJWTToken(signed, testSignKey, testIssuer)
		require.Error(t, err)
	})
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	require.Error(t, err)
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, models.User{Email: "no-id@x.com"}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.Error(t, err)
}
