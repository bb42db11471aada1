// Package mongostore implements dao.DAO over a MongoDB collection.
//
// Collection finds one document by _id and decodes it into the entity type.
// With WithObjectIDs, raw identifiers are parsed as hex ObjectIDs and malformed
// ones are reported as dao.ErrInvalidID without a round trip.
package mongostore
