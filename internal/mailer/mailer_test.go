package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gracechapel/pastor-mobile-api/internal/models"
)

func TestCredentialsMessage(t *testing.T) {
	msg := credentialsMessage("alice@x.org", "Alice", "Smith", models.RoleSmallGroups, "Temp123!pass")

	assert.Equal(t, "alice@x.org", msg.to)
	assert.Equal(t, "Your Small Groups Account Credentials", msg.subject)
	assert.Contains(t, msg.body, "Hello Alice Smith")
	assert.Contains(t, msg.body, "Email: alice@x.org")
	assert.Contains(t, msg.body, "Password: Temp123!pass")
	assert.Contains(t, msg.body, "Role: Small Groups")
}

func TestOTPMessage(t *testing.T) {
	msg := otpMessage("bob@x.org", "042137", 10*time.Minute)

	assert.Equal(t, "bob@x.org", msg.to)
	assert.Contains(t, msg.body, "042137")
	assert.Contains(t, msg.body, "expire in 10 minutes")
}
