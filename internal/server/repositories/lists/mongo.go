package lists

import (
	"context"
	"errors"
	"fmt"

	"github.com/GURUTIKI/presently/internal/common"
	"github.com/GURUTIKI/presently/internal/server/models"
	"github.com/GURUTIKI/presently/internal/server/repositories/mongox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository implements list storage over a MongoDB collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection("lists")}
}

// mongoList carries the native _id alongside the model so records created
// without the application-level id field still surface a usable id.
type mongoList struct {
	OID             primitive.ObjectID `bson:"_id,omitempty"`
	models.GiftList `bson:",inline"`
}

func (d *mongoList) toModel() *models.GiftList {
	list := d.GiftList
	if list.ID == "" {
		list.ID = d.OID.Hex()
	}
	return &list
}

func (r *MongoRepository) Create(ctx context.Context, list *models.GiftList) (*models.GiftList, error) {
	if _, err := r.col.InsertOne(ctx, list); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.GiftList, error) {
	doc := &mongoList{}
	err := r.col.FindOne(ctx, mongox.IDFilter(id)).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.GiftList, error) {
	cur, err := r.col.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	var result []*models.GiftList
	for cur.Next(ctx) {
		doc := &mongoList{}
		if err := cur.Decode(doc); err != nil {
			return nil, err
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
