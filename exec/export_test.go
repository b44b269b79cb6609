package exec

// Collect writes chunks to a collector capped at limit and reports what it kept.
func Collect(limit int, chunks ...string) (kept string, total int64, truncated bool) {
	c := newCollector(limit)
	for _, chunk := range chunks {
		_, _ = c.Write([]byte(chunk))
	}
	return c.String(), c.Total(), c.Truncated()
}
