package catalog

import (
	"encoding/gob"
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindUsed Kind = "used"
	KindNew  Kind = "new"
)

// Cover is where a game's box art comes from. It is either a LocalAsset
// bundled with the client or a RemoteURL.
type Cover interface {
	cover()
}

type LocalAsset struct {
	Name string
}

func (LocalAsset) cover() {}

func (a LocalAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}{"asset", a.Name})
}

type RemoteURL struct {
	URL string
}

func (RemoteURL) cover() {}

func (u RemoteURL) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		URL  string `json:"url"`
	}{"url", u.URL})
}

func init() {
	// Games travel inside session data, which is gob encoded.
	gob.Register(LocalAsset{})
	gob.Register(RemoteURL{})
}

type Game struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Platform    string          `json:"platform"`
	Price       decimal.Decimal `json:"price"`
	Kind        Kind            `json:"kind"`
	Condition   string          `json:"condition,omitempty"`
	Type        string          `json:"type,omitempty"`
	Description string          `json:"description"`
	Cover       Cover           `json:"cover"`
}
