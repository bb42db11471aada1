// Package redisstore caches entities in Redis in front of another dao.DAO.
//
// Cache is a read-through decorator: hits are decoded from JSON stored under
// "<prefix>:<id>", misses fall through to the wrapped DAO and the result is
// written back with a TTL. Lookups that end in dao.ErrNotFound are not cached.
// Redis failures on read are logged and the wrapped DAO is consulted instead.
//
// Entities are cached with encoding/json, so the entity type must round-trip
// through it (exported fields or custom marshalers).
package redisstore
