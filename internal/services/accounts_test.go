package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

func testInfo() *models.PersonalInfo {
	return &models.PersonalInfo{Surname: "Doe", FirstName: "Jane", Address: "1 Main St", Age: 30}
}

func TestRegister(t *testing.T) {
	accounts := NewAccountService()

	assert.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))

	// Duplicate detection is case-insensitive on the normalized email.
	assert.Equal(t, RegisterDuplicateEmail, accounts.Register("ALICE@Example.com", "other", testInfo()))

	assert.Equal(t, RegisterInvalidInput, accounts.Register("not-an-email", "pass", testInfo()))
	assert.Equal(t, RegisterInvalidInput, accounts.Register("bob@example.com", "  ", testInfo()))
	assert.Equal(t, RegisterInvalidInput, accounts.Register("bob@example.com", "pass", nil))

	assert.Len(t, accounts.Clients(), 1)
}

func TestLoginAndLogout(t *testing.T) {
	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))

	assert.Nil(t, accounts.CurrentSession())

	// Email lookup is normalized, the password is an exact match.
	assert.False(t, accounts.Login("alice@example.com", "PASS"))
	assert.Nil(t, accounts.CurrentSession())

	assert.True(t, accounts.Login("  ALICE@example.com ", "pass"))
	require.NotNil(t, accounts.CurrentSession())
	assert.Equal(t, "alice@example.com", accounts.CurrentSession().Email())

	assert.True(t, accounts.Logout())
	assert.Nil(t, accounts.CurrentSession())
	assert.False(t, accounts.Logout())
}

func TestLoginFailureKeepsSession(t *testing.T) {
	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))
	require.Equal(t, RegisterOK, accounts.Register("bob@example.com", "pass", testInfo()))

	require.True(t, accounts.Login("alice@example.com", "pass"))

	// A failed attempt does not disconnect the current client.
	assert.False(t, accounts.Login("bob@example.com", "wrong"))
	assert.Equal(t, "alice@example.com", accounts.CurrentSession().Email())

	// The session holds a single slot: a new login replaces the old one.
	assert.True(t, accounts.Login("bob@example.com", "pass"))
	assert.Equal(t, "bob@example.com", accounts.CurrentSession().Email())
}

func TestClientByEmail(t *testing.T) {
	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))

	assert.NotNil(t, accounts.ClientByEmail(" Alice@Example.COM "))
	assert.Nil(t, accounts.ClientByEmail("bob@example.com"))
}

func TestAccountsReset(t *testing.T) {
	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))
	require.True(t, accounts.Login("alice@example.com", "pass"))

	accounts.Reset()

	assert.Empty(t, accounts.Clients())
	assert.Nil(t, accounts.CurrentSession())
	// The freed email can be registered again.
	assert.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))
}
