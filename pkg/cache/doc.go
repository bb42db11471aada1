// Package cache provides a generic, thread-safe LRU cache.
//
// It backs the in-process entity cache of the dao package, where identifier
// lookups that repeat across form submissions are served without hitting the
// data-access backend:
//
//	c := cache.NewLRU[string, dao.Entity](512)
//	c.Put("User:42", user)
//	if u, ok := c.Get("User:42"); ok {
//		// ...
//	}
//
// Get, Put and Remove are O(1).
package cache
