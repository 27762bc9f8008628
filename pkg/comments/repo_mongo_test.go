package comments

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

const voter = "vectoreal"

func TestGetByPostID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockCursor := common.NewMockCursorHelper(ctrl)
	repo := &CommentsRepoMongo{collection: mockCollection}

	ctx := context.Background()
	postID := primitive.NewObjectID()

	expected := []*Comment{
		{ID: primitive.NewObjectID(), Content: "first", CommentedBy: voter, CommentedDate: time.Now(), PostID: postID, VotedBy: []string{}, CommentIDs: []interface{}{}},
		{ID: primitive.NewObjectID(), Content: "second", CommentedBy: voter, CommentedDate: time.Now(), PostID: postID, VotedBy: []string{}, CommentIDs: []interface{}{}},
	}

	mockCollection.EXPECT().Find(ctx, gomock.Eq(bson.M{"postID": postID})).Return(mockCursor, nil)
	mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	res, err := repo.GetByPostID(ctx, postID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, res)
	}
}

func TestGetByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockCursor := common.NewMockCursorHelper(ctrl)
	repo := &CommentsRepoMongo{collection: mockCollection}

	ctx := context.Background()
	ids := []interface{}{primitive.NewObjectID(), primitive.NewObjectID()}

	expected := []*Comment{
		{ID: ids[0], Content: "first"},
		{ID: ids[1], Content: "second"},
	}

	mockCollection.EXPECT().Find(ctx, gomock.Eq(bson.M{"_id": bson.M{"$in": ids}})).Return(mockCursor, nil)
	mockCursor.EXPECT().All(ctx, gomock.AssignableToTypeOf(&expected)).
		SetArg(1, expected).Return(nil)
	mockCursor.EXPECT().Close(ctx).Return(nil)

	res, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res, expected) {
		t.Errorf("test fail, expected: %v, but was: %v", expected, res)
	}
}

func TestPushChildID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	parentID := primitive.NewObjectID()
	childID := primitive.NewObjectID()

	update := bson.D{
		{Key: "$push", Value: bson.D{{Key: "commentIDs", Value: childID}}},
	}
	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(bson.M{"_id": parentID}), gomock.Eq(update)).
		Return(mockUpdateResult, nil)
	mockUpdateResult.EXPECT().GetModifiedCount().Return(int64(1))

	ok, err := repo.PushChildID(ctx, parentID, childID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected the push to touch the parent")
	}
}

func TestDetachChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "commentIDs", Value: id}}},
	}
	mockCollection.EXPECT().UpdateMany(ctx, gomock.Eq(bson.M{"commentIDs": id}), gomock.Eq(update)).
		Return(mockUpdateResult, nil)

	if err := repo.DetachChild(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteByIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockDeleteResult := common.NewMockDeleteResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	ids := []interface{}{primitive.NewObjectID(), primitive.NewObjectID()}
	mockCollection.EXPECT().DeleteMany(ctx, gomock.Eq(bson.M{"_id": bson.M{"$in": ids}})).
		Return(mockDeleteResult, nil)
	mockDeleteResult.EXPECT().GetDeletedCount().Return(int64(2))

	n, err := repo.DeleteByIDs(ctx, ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("test fail, expected 2 but was %d", n)
	}

	// empty input never reaches the collection
	n, err = repo.DeleteByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("test fail, expected 0 but was %d", n)
	}
}

func TestReverseVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCollection := common.NewMockCollectionHelper(ctrl)
	mockUpdateResult := common.NewMockUpdateResultHelper(ctrl)

	repo := &CommentsRepoMongo{collection: mockCollection}
	ctx := context.Background()

	id := primitive.NewObjectID()

	decFilter := bson.M{"_id": id, "votedBy": voter, "voteCount": bson.M{"$gt": 0}}
	decUpdate := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "voteCount", Value: -1}}},
	}
	pullUpdate := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "votedBy", Value: voter}}},
	}

	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(decFilter), gomock.Eq(decUpdate)).
		Return(mockUpdateResult, nil)
	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(bson.M{"_id": id}), gomock.Eq(pullUpdate)).
		Return(mockUpdateResult, nil)

	if err := repo.ReverseVote(ctx, id, voter); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a failed decrement stops before the pull
	mockCollection.EXPECT().UpdateOne(ctx, gomock.Eq(decFilter), gomock.Eq(decUpdate)).
		Return(mockUpdateResult, errors.New("db_error"))

	if err := repo.ReverseVote(ctx, id, voter); err == nil {
		t.Fatal("expected error but was nil")
	}
}
