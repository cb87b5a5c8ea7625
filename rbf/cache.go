package rbf

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/YuminosukeSato/rbfols/pkg/log"
)

// fitCache keeps the last fit together with a digest of the support set it
// was computed for.
type fitCache struct {
	key    uint64
	fitted *Fitted
}

// supportKey digests the ordered support indices.
func supportKey(w []int) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, idx := range w {
		binary.LittleEndian.PutUint64(buf[:], uint64(idx))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// cached returns a copy of the cached fit if it matches the current supports.
func (n *Network) cached() (*Fitted, bool) {
	if !n.cacheEnabled {
		return nil, false
	}
	n.cacheMu.Lock()
	defer n.cacheMu.Unlock()

	if n.cache == nil || n.cache.key != supportKey(n.w) {
		return nil, false
	}
	n.logger.Debug("fit served from cache",
		log.OperationKey, log.OperationFit,
		log.SupportsKey, len(n.w),
		log.CacheHitKey, true,
	)
	return n.cache.fitted.clone(), true
}

// store records f as the fit for the current supports.
func (n *Network) store(f *Fitted) {
	if !n.cacheEnabled {
		return
	}
	n.cacheMu.Lock()
	defer n.cacheMu.Unlock()
	n.cache = &fitCache{key: supportKey(n.w), fitted: f.clone()}
}
