// Package mongox holds helpers shared by the MongoDB repositories.
package mongox

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilter builds a filter matching a record by the application-level id
// field, falling back to the native ObjectId when the token parses as one.
// Documents created by this application always carry the id field; the
// fallback covers records inserted by other tooling.
func IDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"$or": bson.A{
			bson.M{"id": id},
			bson.M{"_id": oid},
		}}
	}
	return bson.M{"id": id}
}
