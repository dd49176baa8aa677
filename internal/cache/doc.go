// Package cache provides a small thread-safe LRU cache used by the HTTP
// service to reuse the SVG of repeated conversion requests.
//
//	c := cache.New[cache.Key, []byte](128)
//	c.Set(key, svg)
//	svg, ok := c.Get(key)
package cache
