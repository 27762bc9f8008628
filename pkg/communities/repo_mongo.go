package communities

import (
	"context"
	"phreddit/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommunitiesRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommunitiesRepoMongo(db *mongo.Database) *CommunitiesRepoMongo {
	return &CommunitiesRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("communities")}}
}

func (r *CommunitiesRepoMongo) getByFilter(ctx context.Context, filter bson.M) ([]*Community, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var communities []*Community
	err = cur.All(ctx, &communities)
	if err != nil {
		return nil, err
	}

	return communities, nil
}

func (r *CommunitiesRepoMongo) GetAll(ctx context.Context) ([]*Community, error) {
	return r.getByFilter(ctx, bson.M{})
}

func (r *CommunitiesRepoMongo) GetByID(ctx context.Context, id interface{}) (*Community, error) {
	c := &Community{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// GetByName expects the already-normalized (lower-cased) name.
func (r *CommunitiesRepoMongo) GetByName(ctx context.Context, name string) (*Community, error) {
	c := &Community{}
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *CommunitiesRepoMongo) GetByCreator(ctx context.Context, displayName string) ([]*Community, error) {
	return r.getByFilter(ctx, bson.M{"createdBy": displayName})
}

func (r *CommunitiesRepoMongo) GetByMember(ctx context.Context, displayName string) ([]*Community, error) {
	return r.getByFilter(ctx, bson.M{"members": displayName})
}

func (r *CommunitiesRepoMongo) Add(ctx context.Context, c *Community) (interface{}, error) {
	if c.PostIDs == nil {
		c.PostIDs = []interface{}{}
	}
	if c.LinkFlairs == nil {
		c.LinkFlairs = []interface{}{}
	}

	res, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *CommunitiesRepoMongo) UpdateInfo(ctx context.Context, id interface{}, name, description string) (bool, error) {
	set := bson.D{}
	if name != "" {
		set = append(set, bson.E{Key: "name", Value: name})
	}
	if description != "" {
		set = append(set, bson.E{Key: "description", Value: description})
	}
	if len(set) == 0 {
		return false, nil
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommunitiesRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

// AddMember is an $addToSet so joining twice stays a single membership.
func (r *CommunitiesRepoMongo) AddMember(ctx context.Context, id interface{}, displayName string) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "members", Value: displayName}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommunitiesRepoMongo) RemoveMember(ctx context.Context, id interface{}, displayName string) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "members", Value: displayName}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// RemoveMemberEverywhere strips the name from every member list; part of the
// user-deletion cascade.
func (r *CommunitiesRepoMongo) RemoveMemberEverywhere(ctx context.Context, displayName string) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"members": displayName},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "members", Value: displayName}}},
		})
	return err
}

func (r *CommunitiesRepoMongo) PushPostID(ctx context.Context, id, postID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "postIDs", Value: postID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommunitiesRepoMongo) PullPostID(ctx context.Context, id, postID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "postIDs", Value: postID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommunitiesRepoMongo) AddFlair(ctx context.Context, id, flairID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$addToSet", Value: bson.D{{Key: "linkFlairs", Value: flairID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommunitiesRepoMongo) PullFlair(ctx context.Context, id, flairID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "linkFlairs", Value: flairID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// PullFlairEverywhere removes the flair reference from all communities.
func (r *CommunitiesRepoMongo) PullFlairEverywhere(ctx context.Context, flairID interface{}) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"linkFlairs": flairID},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "linkFlairs", Value: flairID}}},
		})
	return err
}

func (r *CommunitiesRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
