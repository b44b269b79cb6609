package cheat

import (
	"context"
	"fmt"
)

// Cache is a string key/value store shared between requests.
type Cache interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err is reserved for storage failures.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}

func lastQueryKey(clientID string) string {
	return "l:" + clientID
}

// SaveQuery remembers query as the last query issued by clientID.
func SaveQuery(ctx context.Context, c Cache, clientID, query string) error {
	if err := validateQuery(clientID, query); err != nil {
		return err
	}
	if err := c.Put(ctx, lastQueryKey(clientID), query); err != nil {
		return fmt.Errorf("save query: %w", err)
	}
	return nil
}

// LastQuery returns the last query saved for clientID.
func LastQuery(ctx context.Context, c Cache, clientID string) (string, bool, error) {
	if clientID == "" {
		return "", false, fmt.Errorf("client id is required: %w", ErrValidation)
	}
	q, ok, err := c.Get(ctx, lastQueryKey(clientID))
	if err != nil {
		return "", false, fmt.Errorf("last query: %w", err)
	}
	return q, ok, nil
}
