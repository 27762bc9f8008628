package comments

import (
	"context"
	"phreddit/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentsRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommentsRepoMongo(db *mongo.Database) *CommentsRepoMongo {
	return &CommentsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("comments")}}
}

func (r *CommentsRepoMongo) getByFilter(ctx context.Context, filter bson.M) ([]*Comment, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var comments []*Comment
	err = cur.All(ctx, &comments)
	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *CommentsRepoMongo) GetAll(ctx context.Context) ([]*Comment, error) {
	return r.getByFilter(ctx, bson.M{})
}

func (r *CommentsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Comment, error) {
	c := &Comment{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *CommentsRepoMongo) GetByIDs(ctx context.Context, ids []interface{}) ([]*Comment, error) {
	if len(ids) == 0 {
		return []*Comment{}, nil
	}

	return r.getByFilter(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *CommentsRepoMongo) GetByPostID(ctx context.Context, postID interface{}) ([]*Comment, error) {
	return r.getByFilter(ctx, bson.M{"postID": postID})
}

func (r *CommentsRepoMongo) GetByAuthor(ctx context.Context, displayName string) ([]*Comment, error) {
	return r.getByFilter(ctx, bson.M{"commentedBy": displayName})
}

func (r *CommentsRepoMongo) GetByVoter(ctx context.Context, displayName string) ([]*Comment, error) {
	return r.getByFilter(ctx, bson.M{"votedBy": displayName})
}

func (r *CommentsRepoMongo) Add(ctx context.Context, c *Comment) (interface{}, error) {
	if c.CommentIDs == nil {
		c.CommentIDs = []interface{}{}
	}
	if c.VotedBy == nil {
		c.VotedBy = []string{}
	}

	res, err := r.collection.InsertOne(ctx, c)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *CommentsRepoMongo) UpdateContent(ctx context.Context, id interface{}, content string) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "content", Value: content}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommentsRepoMongo) DeleteByIDs(ctx context.Context, ids []interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	return res.GetDeletedCount(), nil
}

func (r *CommentsRepoMongo) DeleteByPostID(ctx context.Context, postID interface{}) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"postID": postID})
	if err != nil {
		return 0, err
	}

	return res.GetDeletedCount(), nil
}

func (r *CommentsRepoMongo) DeleteByPostIDs(ctx context.Context, postIDs []interface{}) (int64, error) {
	if len(postIDs) == 0 {
		return 0, nil
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"postID": bson.M{"$in": postIDs}})
	if err != nil {
		return 0, err
	}

	return res.GetDeletedCount(), nil
}

// PushChildID appends a reply reference to its parent comment.
func (r *CommentsRepoMongo) PushChildID(ctx context.Context, parentID, childID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": parentID},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "commentIDs", Value: childID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// DetachChild removes a reference to id from every comment's child list.
func (r *CommentsRepoMongo) DetachChild(ctx context.Context, id interface{}) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"commentIDs": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "commentIDs", Value: id}}},
		})
	return err
}

// ApplyVote adds delta to the tally and records the voter in one conditional
// update, so a duplicate vote cannot slip in between check and write.
// Returns false when the voter is already present.
func (r *CommentsRepoMongo) ApplyVote(ctx context.Context, id interface{}, voter string, delta int) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "votedBy": bson.M{"$ne": voter}},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "voteCount", Value: delta}}},
			{Key: "$push", Value: bson.D{{Key: "votedBy", Value: voter}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// ReverseVote backs out a previously recorded vote by voter: tally drops by
// one with a floor of zero and the name leaves the voter set.
func (r *CommentsRepoMongo) ReverseVote(ctx context.Context, id interface{}, voter string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "votedBy": voter, "voteCount": bson.M{"$gt": 0}},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "voteCount", Value: -1}}},
		})
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "votedBy", Value: voter}}},
		})
	return err
}

func (r *CommentsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
