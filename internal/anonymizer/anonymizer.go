// Package anonymizer maps external chat identities to stable pseudonyms so
// that no raw identifier ends up in submission data.
package anonymizer

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/turkuspot/spotbot/internal/domain"
)

var adjectives = []string{
	"Agile", "Ancient", "Brave", "Bright", "Calm", "Charming",
	"Clever", "Cool", "Creative", "Cute", "Daring", "Eager",
	"Energetic", "Friendly", "Funny", "Gentle", "Graceful",
	"Happy", "Helpful", "Honest", "Kind", "Lively", "Lucky",
	"Mysterious", "Nice", "Nimble", "Peaceful", "Playful",
	"Proud", "Quick", "Quiet", "Smart", "Smooth", "Soft",
	"Strong", "Swift", "Thoughtful", "Warm", "Wild", "Wise",
}

var nouns = []string{
	"Antelope", "Badger", "Bear", "Beaver", "Bee", "Butterfly",
	"Cat", "Chicken", "Deer", "Dog", "Dolphin", "Duck", "Eagle",
	"Elephant", "Fox", "Frog", "Giraffe", "Goat", "Hamster",
	"Hawk", "Hedgehog", "Horse", "Koala", "Lion", "Lizard",
	"Monkey", "Moose", "Mouse", "Owl", "Panda", "Parrot",
	"Penguin", "Rabbit", "Raccoon", "Seal", "Sheep", "Squirrel",
	"Swan", "Tiger", "Turtle", "Wolf", "Zebra",
}

// Anonymizer resolves external identifiers to persistent pseudonyms
type Anonymizer struct {
	nicknames domain.NicknameRepository
}

// New creates a new Anonymizer backed by the given nickname repository
func New(nicknames domain.NicknameRepository) *Anonymizer {
	return &Anonymizer{nicknames: nicknames}
}

// Resolve returns the pseudonym for an external identifier, generating and
// persisting one on first contact. On storage failure it falls back to a
// random one-off pseudonym so the conversation can still proceed.
func (a *Anonymizer) Resolve(externalID string) string {
	existing, err := a.nicknames.Get(externalID)
	if err != nil {
		log.Printf("Failed to look up pseudonym for %s: %v", externalID, err)
		return fallback()
	}
	if existing != "" {
		return existing
	}

	pseudonym := Generate(externalID)
	rec := &domain.PseudonymRecord{
		ExternalID: externalID,
		Pseudonym:  pseudonym,
		CreatedAt:  time.Now(),
	}
	if err := a.nicknames.Create(rec); err != nil {
		log.Printf("Failed to store pseudonym for %s: %v", externalID, err)
		return fallback()
	}

	return pseudonym
}

// Generate derives a deterministic pseudonym from an external identifier.
// The identifier is hashed so the same input always yields the same
// adjective-noun-number combination without being recoverable from it.
func Generate(externalID string) string {
	sum := sha256.Sum256([]byte(externalID))
	seed := int64(binary.BigEndian.Uint64(sum[:8]))
	rng := rand.New(rand.NewSource(seed))

	adjective := adjectives[rng.Intn(len(adjectives))]
	noun := nouns[rng.Intn(len(nouns))]
	number := rng.Intn(1000)

	return fmt.Sprintf("%s%s%03d", adjective, noun, number)
}

func fallback() string {
	return "Anonymous" + uuid.NewString()[:8]
}
