package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dropDatabas3/pf-zambom-back/internal/cache"
	"github.com/dropDatabas3/pf-zambom-back/internal/observability/logger"
)

const (
	jwksCacheKey   = "auth:jwks"
	defaultJWKSTTL = 10 * time.Minute
	defaultTimeout = 5 * time.Second
)

var (
	// ErrKeySetUnavailable indica que no hay JWKS utilizable: el fetch
	// falló, el JSON no parsea o el documento vino sin claves. El cache
	// queda vacío para que el próximo request reintente.
	ErrKeySetUnavailable = errors.New("auth: jwks unavailable")

	// ErrUnknownKeyID indica que el kid no aparece en el key set, ni
	// siquiera después de forzar una recarga.
	ErrUnknownKeyID = errors.New("auth: unknown key id")
)

// ProviderConfig parametriza el KeyProvider.
type ProviderConfig struct {
	// Domain es el tenant emisor, ej. "pf-zambom.us.auth0.com".
	Domain string
	// URL fija el endpoint completo del JWKS. Si está vacía se deriva
	// del Domain con el path well-known estándar.
	URL string
	// TTL es la vida del key set cacheado. 0 => 10m.
	TTL time.Duration
	// Timeout acota el GET al endpoint well-known. 0 => 5s.
	Timeout time.Duration
	// Cache guarda el documento crudo; memoria o Redis según despliegue.
	Cache cache.Cache
	// HTTPClient permite inyectar un cliente propio (tests). Opcional.
	HTTPClient *http.Client
	// Metrics recibe "ok" o "error" por cada fetch al emisor. Opcional.
	Metrics func(result string)
}

// KeyProvider descarga el JWKS del tenant y lo sirve desde cache hasta
// que el TTL vence. Es seguro para uso concurrente: los fetch se
// deduplican con singleflight, así N requests fríos producen un solo GET.
type KeyProvider struct {
	url     string
	ttl     time.Duration
	client  *http.Client
	cache   cache.Cache
	metrics func(result string)
	log     *zap.Logger

	group singleflight.Group
	now   func() time.Time
}

// cachedKeySet es lo que se serializa al cache: el documento crudo más
// el instante del fetch, para que el TTL sea coherente entre réplicas
// que comparten Redis.
type cachedKeySet struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Raw       json.RawMessage `json:"raw"`
}

// NewKeyProvider crea el proveedor. El cache es obligatorio.
func NewKeyProvider(cfg ProviderConfig) *KeyProvider {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultJWKSTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	url := cfg.URL
	if url == "" && cfg.Domain != "" {
		url = "https://" + cfg.Domain + "/.well-known/jwks.json"
	}
	return &KeyProvider{
		url:     url,
		ttl:     cfg.TTL,
		client:  client,
		cache:   cfg.Cache,
		metrics: cfg.Metrics,
		log:     logger.Named("auth.jwks"),
		now:     time.Now,
	}
}

// KeySet devuelve el key set vigente, usando el cache si está fresco.
// Devuelve ErrKeySetUnavailable si no hay documento utilizable.
func (p *KeyProvider) KeySet(ctx context.Context) (*KeySet, error) {
	if ks := p.fromCache(); ks != nil {
		return ks, nil
	}
	return p.refresh(ctx)
}

// Lookup resuelve la clave RSA para un kid. Si el kid no está en el set
// cacheado fuerza una recarga antes de rendirse: así una rotación de
// claves del emisor no rechaza tokens nuevos hasta que venza el TTL.
func (p *KeyProvider) Lookup(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	ks, err := p.KeySet(ctx)
	if err != nil {
		return nil, err
	}
	if k, ok := ks.ByKID(kid); ok {
		return k.RSAPublicKey()
	}

	ks, err = p.refresh(ctx)
	if err != nil {
		// Ya teníamos un set válido sin ese kid; el veredicto es del
		// set conocido, no del backend.
		p.log.Warn("recarga de JWKS falló tras kid desconocido", logger.Kid(kid), logger.Err(err))
		return nil, fmt.Errorf("%w: kid %q", ErrUnknownKeyID, kid)
	}
	if k, ok := ks.ByKID(kid); ok {
		return k.RSAPublicKey()
	}
	return nil, fmt.Errorf("%w: kid %q", ErrUnknownKeyID, kid)
}

// Invalidate descarta el documento cacheado; el próximo acceso refetchea.
func (p *KeyProvider) Invalidate() {
	p.cache.Delete(jwksCacheKey)
}

// fromCache devuelve el key set cacheado si sigue fresco, o nil.
func (p *KeyProvider) fromCache() *KeySet {
	b, ok := p.cache.Get(jwksCacheKey)
	if !ok {
		return nil
	}
	var entry cachedKeySet
	if err := json.Unmarshal(b, &entry); err != nil {
		p.cache.Delete(jwksCacheKey)
		return nil
	}
	if p.now().Sub(entry.FetchedAt) >= p.ttl {
		return nil
	}
	ks, err := parseKeySet(entry.Raw)
	if err != nil {
		p.cache.Delete(jwksCacheKey)
		return nil
	}
	return ks
}

// refresh baja el documento del emisor y lo cachea. Deduplicado con
// singleflight: requests concurrentes comparten un solo GET.
func (p *KeyProvider) refresh(ctx context.Context) (*KeySet, error) {
	v, err, _ := p.group.Do(jwksCacheKey, func() (any, error) {
		raw, err := p.download(ctx)
		if err != nil {
			p.report("error")
			p.log.Error("error al buscar JWKS", logger.JWKSURL(p.url), logger.Err(err))
			return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
		}
		ks, err := parseKeySet(raw)
		if err != nil {
			p.report("error")
			p.log.Error("JWKS inválido", logger.JWKSURL(p.url), logger.Err(err))
			return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
		}
		entry, _ := json.Marshal(cachedKeySet{FetchedAt: p.now(), Raw: raw})
		p.cache.Set(jwksCacheKey, entry, p.ttl)
		p.report("ok")
		p.log.Debug("JWKS actualizado", logger.Count(len(ks.Keys)))
		return ks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*KeySet), nil
}

func (p *KeyProvider) download(ctx context.Context) ([]byte, error) {
	if p.url == "" {
		return nil, errors.New("AUTH0_DOMAIN não configurado")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", p.url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (p *KeyProvider) report(result string) {
	if p.metrics != nil {
		p.metrics(result)
	}
}
