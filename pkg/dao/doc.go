// Package dao defines the data-access contract used to resolve raw identifiers
// into live domain entities.
//
// An Entity exposes its identifier. A DAO looks entities up by identifier and
// reports ErrNotFound or ErrInvalidID for the two recoverable outcomes; any
// other error is a backend fault. Entity types are registered once in a
// Registry under a class name together with their DAO:
//
//	dao.Default.MustRegister("User", (*User)(nil), users)
//
// The registry also holds static lookup functions addressed by a qualified
// "Type::method" descriptor, and Method turns a DAO method name into a typed
// function value after checking its signature.
//
// Backends live in sub-packages: pgstore (PostgreSQL), mongostore (MongoDB)
// and redisstore (a read-through Redis cache). Memory and Cached in this
// package cover tests and in-process caching.
package dao
