// Package pgstore implements dao.DAO over PostgreSQL with pgx.
//
// A Table runs a single-row SELECT by key and scans the row with a caller
// supplied function. Missing rows map to dao.ErrNotFound; keys the server
// cannot cast to the key column type (SQLSTATE 22P02, 22003) map to
// dao.ErrInvalidID, so identifier fields report them as bad input rather than
// backend faults.
//
//	users, err := pgstore.NewTable(pool, "users", []string{"id", "email"},
//		func(row pgx.Row) (*User, error) {
//			u := &User{}
//			return u, row.Scan(&u.Id, &u.Email)
//		},
//		pgstore.WithIntKey(),
//	)
//	dao.Default.MustRegister("User", &User{}, users)
//
// Connect opens a pool with retries, Migrate applies goose migrations and
// Healthcheck adapts a pool to a health endpoint.
package pgstore
