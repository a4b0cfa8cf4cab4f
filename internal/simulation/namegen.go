package simulation

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blockflix/blockflix/internal/model"
)

// Fixed sample pools for synthesizing plausible account holders.  The
// names only need to look real in a demo UI; usernames carry the
// uniqueness (see NewUser).
var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
		"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
		"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
		"Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
		"Anthony", "Betty", "Mark", "Margaret", "Donald", "Sandra",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		"Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	}
	freeMailDomains = []string{
		"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
	}
)

// NameGenerator synthesizes user accounts for the population grower.
type NameGenerator struct {
	rng *rand.Rand
}

// NewNameGenerator returns a generator drawing from the given source.
func NewNameGenerator(rng *rand.Rand) *NameGenerator {
	return &NameGenerator{rng: rng}
}

// NewUser builds one seeded user dated to the given simulated time.
// The username is a fresh UUID with the dashes stripped, which makes
// usernames globally unique without coordinating with the store; the
// email is derived from it.
func (g *NameGenerator) NewUser(createdAt time.Time) model.User {
	username := strings.ReplaceAll(uuid.New().String(), "-", "")
	return model.User{
		FirstName: firstNames[g.rng.IntN(len(firstNames))],
		LastName:  lastNames[g.rng.IntN(len(lastNames))],
		Username:  username,
		Email:     username + "@" + freeMailDomains[g.rng.IntN(len(freeMailDomains))],
		Active:    true,
		CreatedAt: createdAt,
	}
}
