// File: services/contact/contact.go
package contact

import (
	"fmt"
	"math/rand"
	"sync"

	"gynoconnect/models"
	"gynoconnect/utils"
)

// receptionNumbers is the fixed pool a reception contact is drawn from.
// The pick is a presentation placeholder, not the practitioner's own line.
var receptionNumbers = []string{
	"+91 98765 43210",
	"+91 87654 32109",
	"+91 76543 21098",
}

// Resolver picks a reception number uniformly at random, independent of
// which practitioner initiated the request. The random source is injected
// for determinism in tests.
type Resolver struct {
	Notifier utils.Notifier

	mu  sync.Mutex
	rng *rand.Rand
}

// NewResolver creates a resolver over the fixed number pool.
func NewResolver(notifier utils.Notifier, src rand.Source) *Resolver {
	return &Resolver{Notifier: notifier, rng: rand.New(src)}
}

// Resolve returns one number from the pool.
func (r *Resolver) Resolve() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return receptionNumbers[r.rng.Intn(len(receptionNumbers))]
}

// Call emits the calling notification for an already-resolved number and
// returns it for the response body.
func (r *Resolver) Call(number string) models.Notification {
	n := models.Notification{
		Title:       "Calling Reception...",
		Description: fmt.Sprintf("Connecting you to %s", number),
	}
	if r.Notifier != nil {
		r.Notifier.Notify(n)
	}
	return n
}

// Numbers returns a copy of the pool. Used by tests and the handler's
// availability copy.
func Numbers() []string {
	out := make([]string, len(receptionNumbers))
	copy(out, receptionNumbers)
	return out
}
