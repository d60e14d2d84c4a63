package items

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository implements item storage over MongoDB collections.
// Create needs the lists collection for the ownership check.
type MongoRepository struct {
	col   *mongo.Collection
	lists *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		col:   db.Collection("items"),
		lists: db.Collection("lists"),
	}
}

type mongoItem struct {
	OID             primitive.ObjectID `bson:"_id,omitempty"`
	models.GiftItem `bson:",inline"`
}

func (d *mongoItem) toModel() *models.GiftItem {
	item := d.GiftItem
	if item.ID == "" {
		item.ID = d.OID.Hex()
	}
	return &item
}

func (r *MongoRepository) Create(ctx context.Context, item *models.GiftItem, ownerID string) (*models.GiftItem, error) {
	filter := mongox.IDFilter(item.ListID)
	filter["ownerId"] = ownerID

	if err := r.lists.FindOne(ctx, filter).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return item, nil
}

func (r *MongoRepository) ListByList(ctx context.Context, listID string) ([]*models.GiftItem, error) {
	cur, err := r.col.Find(ctx, bson.M{"listId": listID})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer cur.Close(ctx)

	var result []*models.GiftItem
	for cur.Next(ctx) {
		doc := &mongoItem{}
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

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, isBought bool, boughtBy string) (*models.GiftItem, error) {
	update := bson.M{"$set": bson.M{"isBought": isBought, "boughtBy": boughtBy}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	doc := &mongoItem{}
	err := r.col.FindOneAndUpdate(ctx, mongox.IDFilter(id), update, opts).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.col.DeleteOne(ctx, mongox.IDFilter(id))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return res.DeletedCount > 0, nil
}
