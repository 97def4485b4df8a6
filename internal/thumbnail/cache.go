package thumbnail

import (
	"image"
	"sync"
)

// fifoCache keeps at most capacity thumbnails and evicts the oldest
// insertion first. Reads do not refresh an entry.
type fifoCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]image.Image
	queue    []string
}

func newFIFOCache(capacity int) *fifoCache {
	if capacity <= 0 {
		capacity = defaultCacheSize
	}
	return &fifoCache{
		capacity: capacity,
		entries:  make(map[string]image.Image, capacity),
	}
}

func (c *fifoCache) get(key string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	img, ok := c.entries[key]
	return img, ok
}

func (c *fifoCache) put(key string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = img
		return
	}
	for len(c.queue) >= c.capacity {
		oldest := c.queue[0]
		c.queue = c.queue[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = img
	c.queue = append(c.queue, key)
}

func (c *fifoCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
