package sqlite

import "time"

// SetNow replaces the clock used for updated_at.
func (c *Cache) SetNow(now func() time.Time) { c.now = now }
