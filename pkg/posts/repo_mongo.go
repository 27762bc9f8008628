package posts

import (
	"context"
	"phreddit/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewPostsRepoMongo(db *mongo.Database) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("posts")}}
}

func (r *PostsRepoMongo) getByFilter(ctx context.Context, filter bson.M) ([]*Post, error) {
	cur, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []*Post
	err = cur.All(ctx, &posts)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostsRepoMongo) GetAll(ctx context.Context) ([]*Post, error) {
	return r.getByFilter(ctx, bson.M{})
}

func (r *PostsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Post, error) {
	p := &Post{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PostsRepoMongo) GetByCommunityID(ctx context.Context, communityID interface{}) ([]*Post, error) {
	return r.getByFilter(ctx, bson.M{"communityID": communityID})
}

func (r *PostsRepoMongo) GetByAuthor(ctx context.Context, displayName string) ([]*Post, error) {
	return r.getByFilter(ctx, bson.M{"postedBy": displayName})
}

func (r *PostsRepoMongo) GetByVoter(ctx context.Context, displayName string) ([]*Post, error) {
	return r.getByFilter(ctx, bson.M{"votedBy": displayName})
}

// GetByCommentID finds the post whose top-level list holds the given comment.
func (r *PostsRepoMongo) GetByCommentID(ctx context.Context, commentID interface{}) (*Post, error) {
	p := &Post{}
	err := r.collection.FindOne(ctx, bson.M{"commentIDs": commentID}).Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// IncrementViews bumps the view counter server-side and returns the post as
// it was after the increment.
func (r *PostsRepoMongo) IncrementViews(ctx context.Context, id interface{}) (*Post, error) {
	res := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}},
		})

	p := &Post{}
	err := res.Decode(p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Views++
	return p, nil
}

func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	if p.CommentIDs == nil {
		p.CommentIDs = []interface{}{}
	}
	if p.VotedBy == nil {
		p.VotedBy = []string{}
	}

	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// Update rewrites the editable fields. LinkFlairID of nil clears the flair.
func (r *PostsRepoMongo) Update(ctx context.Context, p *Post) (bool, error) {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "title", Value: p.Title},
			{Key: "content", Value: p.Content},
			{Key: "linkFlairID", Value: p.LinkFlairID},
			{Key: "communityID", Value: p.CommunityID},
		}},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *PostsRepoMongo) Delete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return res.GetDeletedCount() > 0, nil
}

func (r *PostsRepoMongo) DeleteByIDs(ctx context.Context, ids []interface{}) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}

	return res.GetDeletedCount(), nil
}

// ExistsByFlair reports whether any post in the community still references
// the flair.
func (r *PostsRepoMongo) ExistsByFlair(ctx context.Context, communityID, flairID interface{}) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"communityID": communityID, "linkFlairID": flairID}).Decode(&Post{})
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// ExistsByFlairAnywhere ignores community boundaries.
func (r *PostsRepoMongo) ExistsByFlairAnywhere(ctx context.Context, flairID interface{}) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"linkFlairID": flairID}).Decode(&Post{})
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *PostsRepoMongo) PushCommentID(ctx context.Context, postID, commentID interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": postID},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "commentIDs", Value: commentID}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// DetachComment removes a reference to id from every post's top-level list.
func (r *PostsRepoMongo) DetachComment(ctx context.Context, id interface{}) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"commentIDs": id},
		bson.D{
			{Key: "$pull", Value: bson.D{{Key: "commentIDs", Value: id}}},
		})
	return err
}

// ApplyVote adds delta to the tally and records the voter in one conditional
// update, so a duplicate vote cannot slip in between check and write.
// Returns false when the voter is already present.
func (r *PostsRepoMongo) ApplyVote(ctx context.Context, id interface{}, voter string, delta int) (bool, error) {
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
func (r *PostsRepoMongo) ReverseVote(ctx context.Context, id interface{}, voter string) error {
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

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}
