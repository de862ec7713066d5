package registry

import (
	"errors"
	"sync"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-mextrie/bittrie"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultWidth = bittrie.MaxWidth
	DefaultName  = "default"
)

type Config struct {
	// Width is the id bit width. Zero selects DefaultWidth.
	Width uint8
}

// Registry hands out user ids. Each new user gets the smallest id not in use,
// and Encrypt replaces every id in use with id^key.
//
// Every method holds the registry lock for its full duration, so Register's
// mex lookup and insert are never interleaved with another call.
type Registry struct {
	Cfg Config
	Log logger.Logger

	opts Options

	mu   sync.Mutex
	trie *bittrie.Trie
	key  uint64
}

func New(cfg Config, log logger.Logger, opts ...Option) (*Registry, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	trie, err := bittrie.New(cfg.Width)
	if err != nil {
		return nil, err
	}

	r := &Registry{
		Cfg:  cfg,
		Log:  log,
		opts: newOptions(opts...),
		trie: trie,
	}
	if err := r.Seed(r.opts.seed...); err != nil {
		return nil, err
	}
	r.Log.Infof("registry %s: width=%d seeded=%d", r.opts.name, cfg.Width, trie.Len())
	return r, nil
}

// Register allocates the smallest unused id.
//
// Returns bittrie.ErrFull once all 2^Width ids are in use.
func (r *Registry) Register() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.trie.Allocate()
	if err != nil {
		r.inc(registrationFailures)
		if errors.Is(err, bittrie.ErrFull) {
			r.Log.Infof("registry %s: id space exhausted: width=%d", r.opts.name, r.Cfg.Width)
		}
		return 0, err
	}
	r.inc(registrations)
	r.observeLen()
	r.Log.Debugf("registry %s: register id=%d", r.opts.name, id)
	return id, nil
}

// Encrypt replaces every id in use with id^key. key is truncated to Width
// bits.
func (r *Registry) Encrypt(key uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key &= bittrie.WidthMask(r.Cfg.Width)
	r.trie.XORAll(key)
	r.key ^= key
	r.inc(encryptions)
	r.Log.Debugf("registry %s: encrypt key=%x", r.opts.name, key)
}

// Seed adds ids directly, in order, stopping at the first failure. Ids added
// before the failure are kept.
//
// Returns an error matching bittrie.ErrDuplicateValue if an id is in use.
func (r *Registry) Seed(ids ...uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		if err := r.trie.Add(id); err != nil {
			r.observeLen()
			return err
		}
		r.inc(seeded)
	}
	r.observeLen()
	return nil
}

// Mex returns the id the next Register call would allocate.
func (r *Registry) Mex() (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trie.Mex()
}

// Contains reports whether id is in use.
func (r *Registry) Contains(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trie.Contains(id)
}

// Key returns the XOR of every key passed to Encrypt. An id registered before
// any encryption is currently held as id^Key().
func (r *Registry) Key() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key
}

func (r *Registry) Len() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trie.Len()
}

// IDs returns the ids in use in ascending order.
func (r *Registry) IDs() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trie.Values()
}

func (r *Registry) Name() string { return r.opts.name }

func (r *Registry) inc(c *prometheus.CounterVec) {
	if r.opts.noMetrics {
		return
	}
	c.WithLabelValues(r.opts.name).Inc()
}

func (r *Registry) observeLen() {
	if r.opts.noMetrics {
		return
	}
	resident.WithLabelValues(r.opts.name).Set(float64(r.trie.Len()))
}
