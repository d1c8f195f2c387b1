package cart

import (
	"context"
	"encoding/gob"

	"github.com/alexedwards/scs/v2"
)

const sessionKey = "cart"

func init() {
	gob.Register(Cart{})
}

// Load returns the cart owned by the session in ctx. A session without a
// cart gets an empty one.
func Load(ctx context.Context, sm *scs.SessionManager) *Cart {
	c, ok := sm.Get(ctx, sessionKey).(Cart)
	if !ok {
		return &Cart{}
	}
	c.items = c.Items()
	return &c
}

func Save(ctx context.Context, sm *scs.SessionManager, c *Cart) {
	sm.Put(ctx, sessionKey, *c)
}
