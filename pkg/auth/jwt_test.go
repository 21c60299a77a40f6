package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTValidator_RoundTrip(t *testing.T) {
	v, err := NewJWTValidator("secret", "games-backend")
	require.NoError(t, err)

	token, err := v.GenerateToken("u1", time.Hour)
	require.NoError(t, err)

	claims, err := v.ValidateToken("Bearer " + token)

	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID())
}

func TestJWTValidator_Rejects(t *testing.T) {
	v, err := NewJWTValidator("secret", "games-backend")
	require.NoError(t, err)

	expired, err := v.GenerateToken("u1", -time.Minute)
	require.NoError(t, err)

	other, err := NewJWTValidator("other-secret", "games-backend")
	require.NoError(t, err)
	forged, err := other.GenerateToken("u1", time.Hour)
	require.NoError(t, err)

	wrongIssuer, err := NewJWTValidator("secret", "someone-else")
	require.NoError(t, err)
	foreign, err := wrongIssuer.GenerateToken("u1", time.Hour)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "games-backend",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "missing", token: "", wantErr: ErrMissingToken},
		{name: "expired", token: expired, wantErr: ErrExpiredToken},
		{name: "bad signature", token: forged, wantErr: ErrInvalidSignature},
		{name: "wrong issuer", token: foreign, wantErr: ErrInvalidClaims},
		{name: "no subject", token: noSubject, wantErr: ErrInvalidClaims},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator("", "games-backend")
	assert.Error(t, err)
}

func TestCallerID(t *testing.T) {
	assert.Equal(t, "", CallerID(context.Background()))

	ctx := SetUserInContext(context.Background(), &UserContext{UserID: "u1", Source: "jwt"})
	assert.Equal(t, "u1", CallerID(ctx))
}
