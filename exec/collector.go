package exec

import "sync"

// collector is an io.Writer that keeps the first limit bytes written to it
// and counts the rest. Writes never fail, so a chatty child is never blocked
// or killed by a full pipe.
type collector struct {
	mu    sync.Mutex
	buf   []byte
	limit int
	total int64
}

func newCollector(limit int) *collector {
	return &collector{limit: limit}
}

func (c *collector) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += int64(len(p))
	if room := c.limit - len(c.buf); room > 0 {
		if len(p) > room {
			c.buf = append(c.buf, p[:room]...)
		} else {
			c.buf = append(c.buf, p...)
		}
	}
	return len(p), nil
}

func (c *collector) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.buf)
}

// Total is the number of bytes written, including those past the limit.
func (c *collector) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

func (c *collector) Truncated() bool {
	return c.Total() > int64(c.limit)
}
