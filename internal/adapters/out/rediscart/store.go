// Package rediscart stores customer shopping carts in Redis. Carts are
// transient staging state with a bounded lifetime, not part of the order
// workflow, which makes a keyed store with TTL a better fit than a table.
package rediscart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "cart:"

	// cartTTL bounds how long an untouched cart survives.
	cartTTL = 7 * 24 * time.Hour
)

// Store implements ports.CartStore on Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a cart store on the given Redis client.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get returns the customer's cart. A missing key is an empty cart, not an
// error.
func (s *Store) Get(ctx context.Context, customerID kernel.UUID) (ports.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return ports.Cart{}, err
	}

	raw, err := s.client.Get(ctx, keyPrefix+customerID.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Cart{Items: []ports.CartItem{}}, nil
	}
	if err != nil {
		return ports.Cart{}, err
	}

	var cart ports.Cart
	if err = json.Unmarshal(raw, &cart); err != nil {
		return ports.Cart{}, err
	}

	return cart, nil
}

// Put replaces the customer's cart and refreshes its TTL.
func (s *Store) Put(ctx context.Context, customerID kernel.UUID, cart ports.Cart) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, keyPrefix+customerID.String(), payload, cartTTL).Err()
}
