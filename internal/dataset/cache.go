package dataset

import (
	"context"
	"sync"
)

// Cache loads a dataset once per process and hands out the same instance
// (or the same error) on every later call.
type Cache struct {
	path string
	once sync.Once
	ds   *Dataset
	err  error
}

// NewCache returns a cache for the CSV at path. Nothing is read until Get.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Get returns the loaded dataset, reading the file on first use.
func (c *Cache) Get(ctx context.Context) (*Dataset, error) {
	c.once.Do(func() {
		c.ds, c.err = Load(ctx, c.path)
	})
	return c.ds, c.err
}
