package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/estoque3a/estoque-api/internal/application/dto"
	"github.com/estoque3a/estoque-api/internal/application/inventory"
	"github.com/estoque3a/estoque-api/pkg/logger"
)

var _ inventory.ListingCache = (*ListingCache)(nil)

const listingKey = "estoque:produtos:urgencia"

// ListingCache caché Redis del listado de productos por urgencia. Guarda el listado
// completo serializado con un TTL corto; cada entrada/salida lo invalida, así el TTL
// solo acota la ventana de staleness ante invalidaciones perdidas.
// Fallos de Redis se degradan a miss: el caché nunca rompe una lectura.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewListingCache construye el caché sobre un cliente Redis ya conectado.
func NewListingCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *ListingCache {
	if log == nil {
		log = logger.Nop()
	}
	return &ListingCache{client: client, ttl: ttl, log: log}
}

// GetListing devuelve el listado cacheado, o ok=false en miss o error de backend.
func (c *ListingCache) GetListing(ctx context.Context) ([]dto.ProductResponse, bool) {
	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("caché: fallo leyendo listado, tratado como miss")
		}
		return nil, false
	}
	var items []dto.ProductResponse
	if err := json.Unmarshal(raw, &items); err != nil {
		// Payload corrupto: descartar la clave y seguir sin caché.
		c.log.Warn().Err(err).Msg("caché: payload inválido, invalidando")
		c.Invalidate(ctx)
		return nil, false
	}
	c.log.Debug().Int("items", len(items)).Msg("caché: hit listado por urgencia")
	return items, true
}

// SetListing guarda el listado con el TTL configurado.
func (c *ListingCache) SetListing(ctx context.Context, items []dto.ProductResponse) {
	raw, err := json.Marshal(items)
	if err != nil {
		c.log.Warn().Err(err).Msg("caché: fallo serializando listado")
		return
	}
	if err := c.client.Set(ctx, listingKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("caché: fallo guardando listado")
	}
}

// Invalidate descarta el listado cacheado. Se llama después de cada movimiento.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listingKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("caché: fallo invalidando listado")
	}
}
