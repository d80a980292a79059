package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-for-identity-token-manager"

func signToken(t *testing.T, secret, email string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestTokenManager_ParseAccess_Valid(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in"})
	token := signToken(t, testSecret, "arjun.mehta2021@vitstudent.ac.in", time.Now().Add(time.Hour))

	email, err := m.ParseAccess(token)
	assert.NoError(t, err)
	assert.Equal(t, "arjun.mehta2021@vitstudent.ac.in", email)
}

func TestTokenManager_ParseAccess_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in"})
	token := signToken(t, testSecret, "arjun.mehta2021@vitstudent.ac.in", time.Now().Add(-time.Hour))

	_, err := m.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_ParseAccess_WrongSecret(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in"})
	token := signToken(t, "another-secret", "arjun.mehta2021@vitstudent.ac.in", time.Now().Add(time.Hour))

	_, err := m.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_ParseAccess_MissingEmail(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in"})

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = m.ParseAccess(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_ParseAccess_Garbage(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in"})

	_, err := m.ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_IsInstitutionalEmail(t *testing.T) {
	m := NewTokenManager(testSecret, []string{"vitstudent.ac.in", "vit.ac.in"})

	assert.True(t, m.IsInstitutionalEmail("arjun.mehta2021@vitstudent.ac.in"))
	assert.True(t, m.IsInstitutionalEmail("staff@vit.ac.in"))
	// Регистр не имеет значения.
	assert.True(t, m.IsInstitutionalEmail("Arjun.Mehta2021@VITSTUDENT.AC.IN"))

	assert.False(t, m.IsInstitutionalEmail("someone@gmail.com"))
	assert.False(t, m.IsInstitutionalEmail("someone@fakevitstudent.ac.in.evil.com"))
	assert.False(t, m.IsInstitutionalEmail(""))
}
