package simulation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserShape(t *testing.T) {
	g := NewNameGenerator(testRand())
	created := date(2017, time.March, 1)
	u := g.NewUser(created)

	assert.Contains(t, firstNames, u.FirstName)
	assert.Contains(t, lastNames, u.LastName)
	assert.Len(t, u.Username, 32)
	assert.NotContains(t, u.Username, "-")
	assert.True(t, u.Active)
	assert.Nil(t, u.PasswordHash)
	assert.True(t, u.CreatedAt.Equal(created))

	local, domain, ok := strings.Cut(u.Email, "@")
	require.True(t, ok)
	assert.Equal(t, u.Username, local)
	assert.Contains(t, freeMailDomains, domain)
}

func TestNewUserUniqueUsernames(t *testing.T) {
	g := NewNameGenerator(testRand())
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		u := g.NewUser(date(2017, time.January, 1))
		require.False(t, seen[u.Username], "duplicate username %s", u.Username)
		seen[u.Username] = true
	}
}
