//go:build !checked

package cache

func (c *Cache[K, V]) check() {}
