package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ruFelix/hesper/pkg/dao"
)

// Finder is the part of *mongo.Collection a Collection needs.
type Finder interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

// Collection is a DAO decoding documents of one collection into E.
type Collection[E dao.Entity] struct {
	coll      Finder
	objectIDs bool
}

// Option configures a Collection.
type Option func(*collectionOptions)

type collectionOptions struct {
	objectIDs bool
}

// WithObjectIDs parses raw identifiers as hex ObjectIDs.
func WithObjectIDs() Option {
	return func(o *collectionOptions) {
		o.objectIDs = true
	}
}

func NewCollection[E dao.Entity](coll Finder, opts ...Option) *Collection[E] {
	var o collectionOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[E]{coll: coll, objectIDs: o.objectIDs}
}

// GetByID implements dao.DAO.
func (c *Collection[E]) GetByID(ctx context.Context, id any) (dao.Entity, error) {
	e, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Get is GetByID returning the concrete entity type.
func (c *Collection[E]) Get(ctx context.Context, id any) (E, error) {
	var zero E

	key, err := c.key(id)
	if err != nil {
		return zero, err
	}
	return c.findOne(ctx, bson.D{{Key: "_id", Value: key}}, id)
}

// GetBy finds the first document whose field equals value.
func (c *Collection[E]) GetBy(ctx context.Context, field string, value any) (E, error) {
	return c.findOne(ctx, bson.D{{Key: field, Value: value}}, value)
}

func (c *Collection[E]) findOne(ctx context.Context, filter bson.D, raw any) (E, error) {
	var e E
	err := c.coll.FindOne(ctx, filter).Decode(&e)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return e, fmt.Errorf("%w: %v", dao.ErrNotFound, raw)
	case err != nil:
		return e, fmt.Errorf("find %v: %w", raw, err)
	}
	return e, nil
}

func (c *Collection[E]) key(raw any) (any, error) {
	if oid, ok := raw.(bson.ObjectID); ok {
		return oid, nil
	}

	s, err := dao.StringID(raw)
	if err != nil {
		return nil, err
	}
	if !c.objectIDs {
		return s, nil
	}

	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", dao.ErrInvalidID, s), err)
	}
	return oid, nil
}
