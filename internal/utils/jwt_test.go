package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "test-issuer"
	testKey    = "0123456789abcdef0123456789abcdef"
)

var testNow = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testKey, testNow)

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, testIssuer, token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, testNow.Add(time.Hour), token.ExpiresAtTime())
}

func TestGenerateJWTToken_UniqueIDs(t *testing.T) {
	first, err := GenerateJWTToken(testIssuer, 1, time.Hour, testKey, testNow)
	require.NoError(t, err)
	second, err := GenerateJWTToken(testIssuer, 1, time.Hour, testKey, testNow)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.SignedString, second.SignedString)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key, testNow)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testKey, testNow)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer, testNow.Add(time.Minute))

	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, generated.ID, parsed.ID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)
	assert.Equal(t, generated.ExpiresAtTime(), parsed.ExpiresAtTime())
}

func TestValidateAndParseJWTToken_Expiry(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 1, time.Hour, testKey, testNow)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "just issued", at: testNow},
		{name: "one second before expiry", at: testNow.Add(time.Hour - time.Second)},
		{name: "at expiry", at: testNow.Add(time.Hour), wantErr: true},
		{name: "after expiry", at: testNow.Add(2 * time.Hour), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(generated.SignedString, testKey, testIssuer, tt.at)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_AnyByteFlipInvalidates(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 7, time.Hour, testKey, testNow)
	require.NoError(t, err)

	raw := []byte(generated.SignedString)
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := ValidateAndParseJWTToken(string(tampered), testKey, testIssuer, testNow)
		assert.Error(t, err, "flipped byte %d must invalidate the token", i)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 1, time.Hour, testKey, testNow)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "another-key-another-key-another!!", testIssuer, testNow)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("real-issuer", 1, time.Hour, testKey, testNow)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, testKey, "fake-issuer", testNow)
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testKey))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(hs512, testKey, testIssuer, testNow)
	assert.Error(t, err, "HS512 must be rejected")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(none, testKey, testIssuer, testNow)
	assert.Error(t, err, "alg=none must be rejected")
}

func TestValidateAndParseJWTToken_ClaimProblems(t *testing.T) {
	sign := func(claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(testNow.Add(time.Hour))

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{name: "missing exp", claims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: "1"}},
		{name: "missing subject", claims: jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: exp}},
		{name: "non-numeric subject", claims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: "alice", ExpiresAt: exp}},
		{name: "subject overflows int64", claims: jwt.RegisteredClaims{Issuer: testIssuer, Subject: "9223372036854775808", ExpiresAt: exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(sign(tt.claims), testKey, testIssuer, testNow)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, s := range []string{"", "not.a.token", "abc", strings.Repeat(".", 5)} {
		_, err := ValidateAndParseJWTToken(s, testKey, testIssuer, testNow)
		assert.Error(t, err, "input %q", s)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
		{name: "empty", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
