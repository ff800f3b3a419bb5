// Package locale holds the player-facing message catalog.
// Messages are looked up by key; the English catalog is embedded.
package locale

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var english []byte

var (
	mu      sync.RWMutex
	catalog = parse(english)
)

func parse(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Use replaces the active catalog with the given .po file contents
func Use(data []byte) {
	po := parse(data)
	mu.Lock()
	catalog = po
	mu.Unlock()
}

// Reset restores the embedded English catalog
func Reset() {
	Use(english)
}

// Get returns the translated message for key, formatted with vars.
// Unknown keys are returned unchanged.
func Get(key string, vars ...interface{}) string {
	mu.RLock()
	po := catalog
	mu.RUnlock()
	tr := po.Get(key)
	if len(vars) > 0 {
		return fmt.Sprintf(tr, vars...)
	}
	return tr
}
