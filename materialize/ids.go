package materialize

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource allocates unique visual node ids.
type IDSource interface {
	Next() string
}

// Counter allocates "0", "1", "2", ... It is not safe for concurrent use.
type Counter struct {
	n int
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter { return &Counter{} }

func (c *Counter) Next() string {
	id := strconv.Itoa(c.n)
	c.n++
	return id
}

// UUIDSource allocates random UUIDs, for graphs that are merged with others.
type UUIDSource struct{}

// NewUUIDSource returns a UUID id source.
func NewUUIDSource() UUIDSource { return UUIDSource{} }

func (UUIDSource) Next() string { return uuid.NewString() }
