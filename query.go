package gfx

import "fmt"

// CreateQuery allocates a GPU timestamp query.
func (c *Context) CreateQuery() (QueryHandle, error) {
	if err := c.checkThread("CreateQuery"); err != nil {
		return QueryHandle{}, err
	}
	c.mu.Lock()
	index, gen, ok := c.queries.alloc()
	c.mu.Unlock()
	if !ok {
		slogger().Error("gfx: out of query slots", "capacity", MaxQueries)
		return QueryHandle{}, fmt.Errorf("%w: queries", ErrPoolExhausted)
	}
	h := QueryHandle{makeHandle(index, gen)}
	rec, _ := c.queries.get(index, gen)
	id, err := c.dev.CreateQuery()
	if err != nil {
		c.mu.Lock()
		c.queries.dealloc(index)
		c.mu.Unlock()
		return QueryHandle{}, fmt.Errorf("%w: %w", ErrDriverFailure, err)
	}
	rec.id = id
	return h, nil
}

func (c *Context) queryRecord(h QueryHandle) (*queryRecord, error) {
	if !h.Valid() {
		return nil, ErrInvalidHandle
	}
	return c.queries.get(h.h.index(), h.h.gen())
}

// QueryTimestamp records a GPU timestamp at the current point of the
// command stream.
func (c *Context) QueryTimestamp(h QueryHandle) error {
	if err := c.checkThread("QueryTimestamp"); err != nil {
		return err
	}
	rec, err := c.queryRecord(h)
	if err != nil {
		return err
	}
	c.dev.QueryTimestamp(rec.id)
	return nil
}

// QueryResult blocks until the query result is available and returns the
// timestamp in nanoseconds.
func (c *Context) QueryResult(h QueryHandle) (uint64, error) {
	if err := c.checkThread("QueryResult"); err != nil {
		return 0, err
	}
	rec, err := c.queryRecord(h)
	if err != nil {
		return 0, err
	}
	return c.dev.QueryResult(rec.id), nil
}

// DestroyQuery tears down the driver object and releases the handle slot.
func (c *Context) DestroyQuery(h QueryHandle) error {
	if err := c.checkThread("DestroyQuery"); err != nil {
		return err
	}
	rec, err := c.queryRecord(h)
	if err != nil {
		return err
	}
	c.dev.DeleteQuery(rec.id)
	c.mu.Lock()
	c.queries.dealloc(h.h.index())
	c.mu.Unlock()
	return nil
}
