package posts

import (
	"context"
	"errors"
	"phreddit/pkg/common"
	"reflect"
	"testing"
	"time"

	gomock "github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type getByFieldCase struct {
	name      string
	cond      bson.M
	cursorErr error
	findErr   error
	f         func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error)
}

const author = "vectoreal"

var communityID = primitive.NewObjectID()

var getByFieldCases = []getByFieldCase{
	{
		name: "GetAllHappyCase",
		cond: bson.M{},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
	{
		name: "GetByAuthorHappyCase",
		cond: bson.M{"postedBy": author},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByAuthor(ctx, author)
		},
	},
	{
		name: "GetByCommunityIDHappyCase",
		cond: bson.M{"communityID": communityID},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByCommunityID(ctx, communityID)
		},
	},
	{
		name: "GetByVoterHappyCase",
		cond: bson.M{"votedBy": author},
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetByVoter(ctx, author)
		},
	},
	{
		name:    "FindErrorExpected",
		cond:    bson.M{},
		findErr: errors.New("error while calling find"),
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
	{
		name:      "CursorErrorExpected",
		cond:      bson.M{},
		cursorErr: errors.New("cursor error"),
		f: func(ctx context.Context, r *PostsRepoMongo) ([]*Post, error) {
			return r.GetAll(ctx)
		},
	},
}

func TestGetByField(t *testing.T) {
	for i, c := range getByFieldCases {
		ctrl := gomock.NewController(t)
		mockCollection := common.NewMockCollectionHelper(ctrl)
		mockCursor := common.NewMockCursorHelper(ctrl)
		repo := &PostsRepoMongo{collection: mockCollection}

		ctx := context.Background()

		expectedPosts := []*Post{
			{ID: primitive.NewObjectID(), Title: "test title 1", Content: "test", PostedBy: author, PostedDate: time.Now(), CommunityID: communityID, VoteCount: 1, VotedBy: []string{author}, CommentIDs: []interface{}{}},
			{ID: primitive.NewObjectID(), Title: "test title 2", Content: "test", PostedBy: author, PostedDate: time.Now(), CommunityID: communityID, VoteCount: 50, Views: 124, VotedBy: []string{}, CommentIDs: []interface{}{}},
		}

		expectedFilter := c.cond

		mockCollection.EXPECT().Find(ctx, gomock.Eq(expectedFilter)).Return(mockCursor, c.cursorErr)
		mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expectedPosts)).
			SetArg(1, expectedPosts).Return(c.findErr)
		mockCursor.EXPECT().Close(ctx).Return(nil)

		res, err := c.f(ctx, repo)

		if c.cursorErr != nil {
			if c.cursorErr != err {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.cursorErr, err)
			}
		} else if c.findErr != nil {
			if c.findErr != err {
				t.Errorf("test #%d %s fail, expected error: %v, but was %v", i, c.name, c.findErr, err)
			}
		} else if !reflect.DeepEqual(res, expectedPosts) {
			t.Errorf("test #%d %s fail, expected: %v, but was: %v", i, c.name, expectedPosts, res)
		}
	}
}

func TestApplyVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	postID := primitive.NewObjectID()

	filter := bson.M{"_id": postID, "votedBy": bson.M{"$ne": author}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "voteCount", Value: 1}}},
		{Key: "$push", Value: bson.D{{Key: "votedBy", Value: author}}},
	}

	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(filter), gomock.Eq(update)).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetModifiedCount().Return(int64(1))

	ok, err := repo.ApplyVote(ctx, postID, author, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the vote to apply")
	}

	// a voter already on the list matches nothing
	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(filter), gomock.Eq(update)).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetModifiedCount().Return(int64(0))

	ok, err = repo.ApplyVote(ctx, postID, author, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected a duplicate vote to be rejected")
	}
}

func TestIncrementViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockSingleResult := common.NewMockSingleResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	bsonM := bson.M{"_id": id}
	bsonD := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	mockCollection.EXPECT().
		FindOneAndUpdate(ctx, gomock.AssignableToTypeOf(bsonM), gomock.AssignableToTypeOf(bsonD)).
		Return(mockSingleResult)

	expectedPost := &Post{ID: id, Title: "test title 1", PostedBy: author, Views: 123}
	mockSingleResult.EXPECT().Decode(gomock.AssignableToTypeOf(expectedPost)).
		SetArg(0, *expectedPost).Return(nil)

	res, err := repo.IncrementViews(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedPost.Views++
	if !reflect.DeepEqual(res, expectedPost) {
		t.Errorf("test fail, expected: %v, but was: %v", expectedPost, res)
	}
}

func TestAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockInsertOneResult := common.NewMockInsertOneResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	expectedInsertID := primitive.NewObjectID()
	expectedPost := &Post{Title: "test title", PostedBy: author}
	mockCollection.EXPECT().InsertOne(ctx, gomock.AssignableToTypeOf(expectedPost)).
		Return(mockInsertOneResult, nil)

	mockInsertOneResult.EXPECT().GetInsertedID().Return(expectedInsertID)

	res, err := repo.Add(ctx, expectedPost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(res, expectedInsertID) {
		t.Errorf("test fail, expected: %v, but was: %v", expectedInsertID, res)
	}

	if expectedPost.CommentIDs == nil || expectedPost.VotedBy == nil {
		t.Errorf("test fail, added post should not carry nil lists")
	}
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockDeleteResult := common.NewMockDeleteResultHelper(ctrl)

	repo := &PostsRepoMongo{collection: mockCollection}

	ctx := context.Background()

	id := primitive.NewObjectID()
	bsonM := bson.M{"_id": id}
	mockCollection.EXPECT().DeleteOne(ctx, gomock.AssignableToTypeOf(bsonM)).
		Return(mockDeleteResult, nil)

	mockDeleteResult.EXPECT().GetDeletedCount().Return(int64(1))

	deleted, err := repo.Delete(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !deleted {
		t.Error("test fail, expected true but was false")
	}
}

func TestParseID(t *testing.T) {
	repo := &PostsRepoMongo{}

	id := primitive.NewObjectID()
	parsed, err := repo.ParseID(id.Hex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	objID, ok := parsed.(primitive.ObjectID)
	if !ok {
		t.Fatalf("unexpected type: %t", parsed)
	}

	if objID.Hex() != id.Hex() {
		t.Fatalf("values not equal: %v, %v", objID.Hex(), id.Hex())
	}
}
