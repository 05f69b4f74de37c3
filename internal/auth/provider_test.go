package auth

import (
	"context"
	"crypto/rsa"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dropDatabas3/pf-zambom-back/internal/cache"
)

func TestKeyProviderFetchFailureThenRecovery(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	ctx := context.Background()

	if _, err := p.KeySet(ctx); !errors.Is(err, ErrKeySetUnavailable) {
		t.Fatalf("err = %v, want ErrKeySetUnavailable", err)
	}

	// el fallo no queda cacheado: cuando el emisor se recupera el
	// siguiente request ya obtiene el set
	healthy.Store(true)
	ks, err := p.KeySet(ctx)
	if err != nil {
		t.Fatalf("KeySet tras recuperación: %v", err)
	}
	if _, ok := ks.ByKID(testKid); !ok {
		t.Fatalf("falta kid %q en el set", testKid)
	}
}

func TestKeyProviderEmptyKeysNotCached(t *testing.T) {
	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(`{"keys":[]}`))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := p.KeySet(ctx); !errors.Is(err, ErrKeySetUnavailable) {
			t.Fatalf("err = %v, want ErrKeySetUnavailable", err)
		}
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Fatalf("fetches = %d, want 2 (un documento vacío nunca se cachea)", n)
	}
}

func TestKeyProviderCachesUntilTTL(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	p := NewKeyProvider(ProviderConfig{
		Domain: testDomain,
		URL:    srv.URL,
		TTL:    10 * time.Minute,
		Cache:  cache.NewMemory(time.Hour),
	})
	ctx := context.Background()

	if _, err := p.KeySet(ctx); err != nil {
		t.Fatalf("KeySet: %v", err)
	}
	if _, err := p.KeySet(ctx); err != nil {
		t.Fatalf("KeySet cacheado: %v", err)
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Fatalf("fetches = %d, want 1", n)
	}

	// pasado el TTL el documento se considera vencido y se refetchea
	p.now = func() time.Time { return time.Now().Add(11 * time.Minute) }
	if _, err := p.KeySet(ctx); err != nil {
		t.Fatalf("KeySet tras TTL: %v", err)
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Fatalf("fetches = %d, want 2", n)
	}
}

func TestKeyProviderRefreshOnRotation(t *testing.T) {
	oldKey := genRSAKey(t)
	newKey := genRSAKey(t)
	docBefore := jwksDoc(map[string]*rsa.PublicKey{"key-1": &oldKey.PublicKey})
	docAfter := jwksDoc(map[string]*rsa.PublicKey{
		"key-1": &oldKey.PublicKey,
		"key-2": &newKey.PublicKey,
	})

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&fetches, 1) == 1 {
			_, _ = w.Write([]byte(docBefore))
			return
		}
		_, _ = w.Write([]byte(docAfter))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	ctx := context.Background()

	// calentar el cache con el set viejo
	if _, err := p.KeySet(ctx); err != nil {
		t.Fatalf("KeySet: %v", err)
	}

	// un kid recién rotado fuerza la recarga en vez de esperar el TTL
	pub, err := p.Lookup(ctx, "key-2")
	if err != nil {
		t.Fatalf("Lookup(key-2): %v", err)
	}
	if pub.N.Cmp(newKey.PublicKey.N) != 0 {
		t.Fatal("Lookup devolvió otra clave")
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Fatalf("fetches = %d, want 2", n)
	}
}

func TestKeyProviderUnknownKidAfterRefresh(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)

	_, err := p.Lookup(context.Background(), "no-existe")
	if !errors.Is(err, ErrUnknownKeyID) {
		t.Fatalf("err = %v, want ErrUnknownKeyID", err)
	}
	if n := atomic.LoadInt32(&fetches); n != 2 {
		t.Fatalf("fetches = %d, want 2 (inicial + recarga forzada)", n)
	}
}

func TestKeyProviderSingleflight(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		time.Sleep(30 * time.Millisecond)
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	p := testProvider(srv.URL)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.KeySet(ctx)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("KeySet concurrente: %v", err)
		}
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Fatalf("fetches = %d, want 1 (singleflight)", n)
	}
}

func TestKeyProviderSharedCache(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var fetches int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	shared := cache.NewMemory(time.Hour)
	newProvider := func() *KeyProvider {
		return NewKeyProvider(ProviderConfig{Domain: testDomain, URL: srv.URL, Cache: shared})
	}

	ctx := context.Background()
	if _, err := newProvider().KeySet(ctx); err != nil {
		t.Fatalf("KeySet: %v", err)
	}
	// otra instancia (otra réplica, o un proceso reiniciado) reutiliza
	// el documento cacheado en vez de volver al emisor
	if _, err := newProvider().KeySet(ctx); err != nil {
		t.Fatalf("KeySet desde cache compartido: %v", err)
	}
	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Fatalf("fetches = %d, want 1", n)
	}
}

func TestKeyProviderMissingDomain(t *testing.T) {
	p := NewKeyProvider(ProviderConfig{Cache: cache.NewMemory(time.Minute)})
	if _, err := p.KeySet(context.Background()); !errors.Is(err, ErrKeySetUnavailable) {
		t.Fatalf("err = %v, want ErrKeySetUnavailable", err)
	}
}

func TestKeyProviderMetricsHook(t *testing.T) {
	key := genRSAKey(t)
	doc := jwksDoc(map[string]*rsa.PublicKey{testKid: &key.PublicKey})

	var healthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	var mu sync.Mutex
	var results []string
	p := NewKeyProvider(ProviderConfig{
		Domain: testDomain,
		URL:    srv.URL,
		Cache:  cache.NewMemory(time.Minute),
		Metrics: func(result string) {
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		},
	})

	ctx := context.Background()
	_, _ = p.KeySet(ctx)
	healthy.Store(true)
	_, _ = p.KeySet(ctx)

	mu.Lock()
	defer mu.Unlock()
	if len(results) != 2 || results[0] != "error" || results[1] != "ok" {
		t.Fatalf("results = %v, want [error ok]", results)
	}
}
