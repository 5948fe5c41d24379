package chatbot

import (
	"math/rand/v2"

	"empathos/backend/internal/responses"
)

// Responder chooses a reply for an incoming message. It is the seam where a
// real classification or generation service would plug in: message text in,
// response text out, nothing else shared with persistence.
type Responder interface {
	Respond(message string) string
}

// CannedResponder picks uniformly at random from a fixed response set. It
// is stateless and content-blind: the message only triggers the selection,
// it never influences which response comes back.
type CannedResponder struct {
	set []string
}

// NewCannedResponder builds a responder over the given set, falling back to
// the built-in defaults when the set is empty.
func NewCannedResponder(set []string) *CannedResponder {
	if len(set) == 0 {
		set = responses.Default
	}
	return &CannedResponder{set: set}
}

func (r *CannedResponder) Respond(message string) string {
	return r.set[rand.IntN(len(r.set))]
}
