//go:build checked

package cache

// check runs Verify after every mutation in checked builds. A panic already
// in flight is passed on unchanged.
func (c *Cache[K, V]) check() {
	if r := recover(); r != nil {
		panic(r)
	}
	if err := c.Verify(); err != nil {
		c.bug(err)
	}
}
