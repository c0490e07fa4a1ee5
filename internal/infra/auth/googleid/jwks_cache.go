package googleid

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	// A snapshot is served without question while fresh, served while
	// a background reload runs once it goes stale, and discarded
	// entirely past the usable horizon.
	keyFreshFor  = 5 * time.Minute
	keyUsableFor = 20 * time.Minute

	keyFetchWait = 5 * time.Second
)

// keyCache mirrors Google's JWKS endpoint in memory as an immutable
// snapshot. Lookups never block on the network while a usable snapshot
// exists; a kid the snapshot does not carry forces a reload before the
// lookup fails, which is how key rotation is absorbed.
type keyCache struct {
	url        string
	httpClient *http.Client
	now        func() time.Time

	mu       sync.RWMutex
	snapshot *keySnapshot

	reloads singleflight.Group
}

type keySnapshot struct {
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

func (s *keySnapshot) lookup(kid string, now time.Time) *rsa.PublicKey {
	if s == nil || now.Sub(s.fetchedAt) > keyUsableFor {
		return nil
	}
	return s.keys[kid]
}

func (s *keySnapshot) stale(now time.Time) bool {
	return s == nil || now.Sub(s.fetchedAt) > keyFreshFor
}

func newKeyCache(url string, httpClient *http.Client) *keyCache {
	return &keyCache{
		url:        url,
		httpClient: httpClient,
		now:        time.Now,
	}
}

func (c *keyCache) get(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if kid == "" {
		return nil, errors.New("token names no signing key")
	}
	now := c.now()
	snap := c.current()
	if key := snap.lookup(kid, now); key != nil {
		if snap.stale(now) {
			go func() { _, _ = c.reload(context.Background()) }()
		}
		return key, nil
	}
	snap, err := c.reload(ctx)
	if err != nil {
		return nil, err
	}
	if key := snap.lookup(kid, c.now()); key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("signing key %q not in the trusted set", kid)
}

func (c *keyCache) current() *keySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// reload is single-flight: concurrent callers share one download
// instead of stampeding the endpoint.
func (c *keyCache) reload(ctx context.Context) (*keySnapshot, error) {
	result := c.reloads.DoChan("jwks", func() (any, error) {
		return c.download()
	})
	select {
	case r := <-result:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*keySnapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *keyCache) download() (*keySnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), keyFetchWait)
	defer cancel()

	keys, err := c.fetchKeys(ctx)
	if err != nil && ctx.Err() == nil {
		// One immediate retry covers the transient upstream hiccup.
		keys, err = c.fetchKeys(ctx)
	}
	if err != nil {
		return nil, err
	}
	snap := &keySnapshot{keys: keys, fetchedAt: c.now()}
	c.mu.Lock()
	c.snapshot = snap
	c.mu.Unlock()
	return snap, nil
}

func (c *keyCache) fetchKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks endpoint returned %s", resp.Status)
	}

	var doc struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, err
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return nil, errors.New("jwks endpoint returned no usable RSA keys")
	}
	return keys, nil
}

func rsaKeyFromJWK(n64, e64 string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n64)
	if err != nil {
		return nil, err
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(e64)
	if err != nil {
		return nil, err
	}
	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() < 3 || e.Int64() > int64(^uint32(0)) {
		return nil, errors.New("rsa exponent out of range")
	}
	n := new(big.Int).SetBytes(nBytes)
	if n.Sign() <= 0 {
		return nil, errors.New("rsa modulus missing")
	}
	return &rsa.PublicKey{N: n, E: int(e.Int64())}, nil
}
