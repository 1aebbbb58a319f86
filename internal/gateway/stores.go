package gateway

import (
	"fmt"

	"github.com/labstack/gommon/log"

	"uk.co.dudmesh.convene/internal/messaging"
	"uk.co.dudmesh.convene/internal/requests"
)

// Stores bundles everything that is saved on shutdown and restored on start
// up.
type Stores struct {
	Messages *messaging.Store
	Requests *requests.Store
}

// LoadAll restores both stores. A snapshot that is missing or cannot be
// read leaves an empty store in its place so the conference can still start.
func (g *gateway) LoadAll() *Stores {
	stores := &Stores{
		Messages: messaging.NewStore(),
		Requests: requests.NewStore(),
	}

	if found, err := g.Load(MessagesSnapshot, stores.Messages); err != nil {
		log.Errorf("reading message store, starting empty: %v", err)
		stores.Messages = messaging.NewStore()
	} else if !found {
		log.Infof("no saved messages, starting empty")
	}

	if found, err := g.Load(RequestsSnapshot, stores.Requests); err != nil {
		log.Errorf("reading request store, starting empty: %v", err)
		stores.Requests = requests.NewStore()
	} else if !found {
		log.Infof("no saved requests, starting empty")
	}

	return stores
}

func (g *gateway) SaveAll(stores *Stores) error {
	if err := g.Save(MessagesSnapshot, stores.Messages); err != nil {
		return fmt.Errorf("saving messages: %w", err)
	}
	if err := g.Save(RequestsSnapshot, stores.Requests); err != nil {
		return fmt.Errorf("saving requests: %w", err)
	}
	return nil
}
