package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tubetui/tubetui/internal/core/auth"
)

func TestAuthCmd_ReadCredentials(t *testing.T) {
	t.Run("flags satisfy the form", func(t *testing.T) {
		cmd := &AuthCmd{email: "ada@example.com", password: "hunter2"}

		creds, err := cmd.readCredentials(false)
		require.NoError(t, err)
		assert.Equal(t, auth.Credentials{Email: "ada@example.com", Password: "hunter2"}, creds)
	})

	t.Run("email is trimmed", func(t *testing.T) {
		cmd := &AuthCmd{email: "  ada@example.com ", password: "hunter2"}

		creds, err := cmd.readCredentials(false)
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", creds.Email)
	})

	t.Run("names from flags skip the form", func(t *testing.T) {
		cmd := &AuthCmd{
			email:     "ada@example.com",
			password:  "hunter2",
			firstName: "Ada",
			lastName:  "Lovelace",
		}

		_, err := cmd.readCredentials(true)
		require.NoError(t, err)
		assert.Equal(t, "Ada", cmd.firstName)
		assert.Equal(t, "Lovelace", cmd.lastName)
	})
}

func TestValidateRequired(t *testing.T) {
	validate := validateRequired("email")

	assert.NoError(t, validate("ada@example.com"))
	require.Error(t, validate("   "))
	assert.EqualError(t, validate(""), "email is required")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace <ada@example.com>", displayName(auth.Snapshot{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}))
	assert.Equal(t, "ada@example.com", displayName(auth.Snapshot{Email: "ada@example.com"}))
}
