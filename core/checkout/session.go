package checkout

import (
	"context"
	"encoding/gob"
	"errors"

	"github.com/alexedwards/scs/v2"
)

const sessionKey = "checkout"

var ErrNoFlow = errors.New("no checkout in progress")

func init() {
	gob.Register(Flow{})
}

func Load(ctx context.Context, sm *scs.SessionManager) (*Flow, error) {
	f, ok := sm.Get(ctx, sessionKey).(Flow)
	if !ok {
		return nil, ErrNoFlow
	}
	return &f, nil
}

func Save(ctx context.Context, sm *scs.SessionManager, f *Flow) {
	sm.Put(ctx, sessionKey, *f)
}

// Drop discards the session's checkout along with any form data.
func Drop(ctx context.Context, sm *scs.SessionManager) {
	sm.Remove(ctx, sessionKey)
}
