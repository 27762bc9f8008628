package flairs

import (
	"context"
	"phreddit/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FlairsRepoMongo struct {
	collection common.CollectionHelper
}

func NewFlairsRepoMongo(db *mongo.Database) *FlairsRepoMongo {
	return &FlairsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("linkflairs")}}
}

func (r *FlairsRepoMongo) GetAll(ctx context.Context) ([]*Flair, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var flairs []*Flair
	err = cur.All(ctx, &flairs)
	if err != nil {
		return nil, err
	}

	return flairs, nil
}

func (r *FlairsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Flair, error) {
	f := &Flair{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(f)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

func (r *FlairsRepoMongo) Add(ctx context.Context, f *Flair) (interface{}, error) {
	res, err := r.collection.InsertOne(ctx, f)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *FlairsRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

func (r *FlairsRepoMongo) DeleteByIDs(ctx context.Context, ids []interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	return res.GetDeletedCount(), nil
}

func (r *FlairsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
