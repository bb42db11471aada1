package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ruFelix/hesper/pkg/dao/mongostore"
	"github.com/ruFelix/hesper/pkg/dao/pgstore"
)

// User is an account stored in Postgres.
type User struct {
	UUID  uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

func (u *User) ID() any {
	return u.UUID
}

var userColumns = []string{"id", "email", "name"}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.UUID, &u.Email, &u.Name); err != nil {
		return nil, err
	}
	return &u, nil
}

// Users adds lookups by natural keys to the users table.
type Users struct {
	*pgstore.Table[*User]
}

func newUsers(db pgstore.Querier) (Users, error) {
	table, err := pgstore.NewTable[*User](db, "users", userColumns, scanUser, pgstore.WithUUIDKey())
	if err != nil {
		return Users{}, err
	}
	return Users{table}, nil
}

func (u Users) GetByEmail(ctx context.Context, email string) (*User, error) {
	return u.GetBy(ctx, "email", email)
}

// Team is a workspace stored in MongoDB.
type Team struct {
	OID  bson.ObjectID `bson:"_id" json:"id"`
	Slug string        `bson:"slug" json:"slug"`
	Name string        `bson:"name" json:"name"`
}

func (t *Team) ID() any {
	return t.OID
}

// Teams adds slug lookups to the teams collection.
type Teams struct {
	*mongostore.Collection[*Team]
}

func newTeams(coll mongostore.Finder) Teams {
	return Teams{mongostore.NewCollection[*Team](coll, mongostore.WithObjectIDs())}
}

func (t Teams) GetBySlug(ctx context.Context, slug string) (*Team, error) {
	return t.GetBy(ctx, "slug", slug)
}
