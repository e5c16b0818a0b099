package pairing

import (
	"errors"
	"fmt"
	"sync"
)

// ErrCurveUnknown is returned by Lookup when no Pairing provider has been
// registered under the requested curve key.
var ErrCurveUnknown = errors.New("pairing: unknown curve key")

// DefaultCurveKey names the catalogue's default entry: a 112-bit security
// level Type-D asymmetric pairing, in the naming convention of pairing
// libraries that expose named curves by embedding degree, group order and
// discriminant (here a 224-bit order curve with discriminant 496659).
const DefaultCurveKey = "typeD_224_496659"

var (
	catalogueMu sync.RWMutex
	catalogue   = map[string]func() (Pairing, error){}
)

// Register installs factory under key, so that a later Lookup(key) returns
// a fresh provider built by factory. Adapter packages call this from an
// init() function; registering the same key twice overwrites the prior
// factory (last registration wins), which lets an application alias its
// preferred adapter onto the catalogue's default key.
func Register(key string, factory func() (Pairing, error)) {
	catalogueMu.Lock()
	defer catalogueMu.Unlock()
	catalogue[key] = factory
}

// Lookup returns a fresh Pairing provider for curveKey, or ErrCurveUnknown
// if no adapter has registered that key.
func Lookup(curveKey string) (Pairing, error) {
	catalogueMu.RLock()
	factory, ok := catalogue[curveKey]
	catalogueMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCurveUnknown, curveKey)
	}
	return factory()
}

// Known reports the curve keys currently registered in the catalogue.
func Known() []string {
	catalogueMu.RLock()
	defer catalogueMu.RUnlock()
	keys := make([]string, 0, len(catalogue))
	for k := range catalogue {
		keys = append(keys, k)
	}
	return keys
}
