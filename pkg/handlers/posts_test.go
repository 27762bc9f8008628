package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"phreddit/pkg/cascade"
	"phreddit/pkg/comments"
	"phreddit/pkg/communities"
	"phreddit/pkg/errs"
	"phreddit/pkg/flairs"
	"phreddit/pkg/posts"
	"phreddit/pkg/session"
	"phreddit/pkg/votes"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type postMocks struct {
	posts       *MockPostsRepo
	comments    *MockCommentsRepo
	communities *MockCommunitiesRepo
	flairs      *MockFlairsRepo
	tree        *MockTreeService
	ledger      *MockVoteLedger
	cascade     *MockCascadeEngine
}

func newPostHandler(ctrl *gomock.Controller) (*PostHandler, *postMocks) {
	m := &postMocks{
		posts:       NewMockPostsRepo(ctrl),
		comments:    NewMockCommentsRepo(ctrl),
		communities: NewMockCommunitiesRepo(ctrl),
		flairs:      NewMockFlairsRepo(ctrl),
		tree:        NewMockTreeService(ctrl),
		ledger:      NewMockVoteLedger(ctrl),
		cascade:     NewMockCascadeEngine(ctrl),
	}
	h := &PostHandler{
		PostsRepo:       m.posts,
		CommentsRepo:    m.comments,
		CommunitiesRepo: m.communities,
		FlairsRepo:      m.flairs,
		Tree:            m.tree,
		Ledger:          m.ledger,
		Cascade:         m.cascade,
		Logger:          zap.NewNop().Sugar(),
	}
	return h, m
}

func sessionRequest(method string, body interface{}, sess *session.Session) (*httptest.ResponseRecorder, *http.Request) {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	r := httptest.NewRequest(method, "/", &buf)
	if sess != nil {
		r = r.WithContext(contextWithSession(r, sess))
	}
	return httptest.NewRecorder(), r
}

func TestCreatePostWithInlineFlair(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	communityID := primitive.NewObjectID()
	flairID := primitive.NewObjectID()
	postID := primitive.NewObjectID()

	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPost, map[string]string{
		"title":         "first post",
		"content":       "hello there",
		"communityID":   communityID.Hex(),
		"linkFlairText": "  Question  ",
	}, sess)

	m.communities.EXPECT().ParseID(communityID.Hex()).Return(communityID, nil)
	m.communities.EXPECT().GetByID(gomock.Any(), communityID).
		Return(&communities.Community{ID: communityID, Name: "golang"}, nil)
	m.flairs.EXPECT().Add(gomock.Any(), &flairs.Flair{Content: "Question"}).Return(flairID, nil)
	m.communities.EXPECT().AddFlair(gomock.Any(), communityID, flairID).Return(true, nil)
	m.posts.EXPECT().Add(gomock.Any(), gomock.Any()).Return(postID, nil)
	m.communities.EXPECT().PushPostID(gomock.Any(), communityID, postID).Return(true, nil)

	h.Create(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("wrong status code: %d, but expected %d: %s",
			w.Result().StatusCode, http.StatusCreated, w.Body.String())
	}

	var created posts.Post
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if created.PostedBy != displayName || created.LinkFlairID == nil {
		t.Fatalf("unexpected created post: %+v", created)
	}
}

func TestCreatePostUnknownCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	communityID := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPost, map[string]string{
		"title":       "first post",
		"content":     "hello there",
		"communityID": communityID.Hex(),
	}, sess)

	m.communities.EXPECT().ParseID(communityID.Hex()).Return(communityID, nil)
	m.communities.EXPECT().GetByID(gomock.Any(), communityID).Return(nil, nil)

	h.Create(w, r)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

func TestGetPostByIDResolvesComments(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	post := &posts.Post{ID: postID, Title: "a post", CommentIDs: []interface{}{commentID}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.posts.EXPECT().GetByID(gomock.Any(), postID).Return(post, nil)
	m.tree.EXPECT().ResolveTopLevel(gomock.Any(), post).
		Return([]*comments.Comment{{ID: commentID, Content: "reply"}}, nil)

	h.GetByID(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var resp PostResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if len(resp.Comments) != 1 || resp.Comments[0].Content != "reply" {
		t.Fatalf("expected the resolved comment, got %+v", resp.Comments)
	}
}

func TestVotePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPatch, map[string]string{"direction": "up"}, sess)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.ledger.EXPECT().
		Apply(gomock.Any(), votes.TargetPost, postID, displayName, votes.Up).
		Return(5, nil)

	h.Vote(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var resp VoteResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if resp.VoteCount != 5 {
		t.Fatalf("expected tally 5, got %d", resp.VoteCount)
	}
}

func TestVotePostDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPatch, map[string]string{"direction": "down"}, sess)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.ledger.EXPECT().
		Apply(gomock.Any(), votes.TargetPost, postID, displayName, votes.Down).
		Return(0, errs.New(errs.Permission, "already voted on this target"))

	h.Vote(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusForbidden)
	}
}

// Dropping a post's flair garbage-collects it once nothing else in the
// community wears it.
func TestUpdatePostReapsAbandonedFlair(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	communityID := primitive.NewObjectID()
	flairID := primitive.NewObjectID()

	post := &posts.Post{
		ID:          postID,
		Title:       "old title",
		Content:     "old content",
		LinkFlairID: flairID,
		PostedBy:    displayName,
		PostedDate:  time.Now(),
		CommunityID: communityID,
	}

	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPatch, map[string]string{
		"title":   "new title",
		"content": "new content",
	}, sess)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.posts.EXPECT().GetByID(gomock.Any(), postID).Return(post, nil)
	m.posts.EXPECT().Update(gomock.Any(), post).Return(true, nil)
	m.posts.EXPECT().ExistsByFlair(gomock.Any(), communityID, flairID).Return(false, nil)
	m.communities.EXPECT().PullFlair(gomock.Any(), communityID, flairID).Return(true, nil)
	m.flairs.EXPECT().Delete(gomock.Any(), flairID).Return(true, nil)

	h.Update(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d: %s",
			w.Result().StatusCode, http.StatusOK, w.Body.String())
	}
}

func TestDeletePostForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: "intruder"}}
	w, r := sessionRequest(http.MethodDelete, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.posts.EXPECT().GetByID(gomock.Any(), postID).
		Return(&posts.Post{ID: postID, PostedBy: displayName}, nil)

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusForbidden)
	}
}

func TestDeletePostCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	postID := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodDelete, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": postID.Hex()})

	m.posts.EXPECT().ParseID(postID.Hex()).Return(postID, nil)
	m.posts.EXPECT().GetByID(gomock.Any(), postID).
		Return(&posts.Post{ID: postID, PostedBy: displayName}, nil)
	m.cascade.EXPECT().DeletePost(gomock.Any(), postID).
		Return(cascade.Removed{Posts: 1, Comments: 3}, nil)

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var removed cascade.Removed
	if err := json.NewDecoder(w.Body).Decode(&removed); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if removed.Comments != 3 {
		t.Fatalf("expected three removed comments, got %+v", removed)
	}
}

// The feed endpoint splits posts by the viewer's memberships.
func TestGetAllPostsPartitionsFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	joinedCommunity := primitive.NewObjectID()
	otherCommunity := primitive.NewObjectID()
	now := time.Now()

	p1 := &posts.Post{ID: primitive.NewObjectID(), Title: "joined post", CommunityID: joinedCommunity, PostedDate: now}
	p2 := &posts.Post{ID: primitive.NewObjectID(), Title: "other post", CommunityID: otherCommunity, PostedDate: now}

	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodGet, nil, sess)

	m.posts.EXPECT().GetAll(gomock.Any()).Return([]*posts.Post{p1, p2}, nil)
	m.communities.EXPECT().GetByMember(gomock.Any(), displayName).
		Return([]*communities.Community{{ID: joinedCommunity}}, nil)

	h.GetAll(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var resp FeedResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if len(resp.Joined) != 1 || len(resp.Other) != 1 {
		t.Fatalf("expected 1/1 split, got %d/%d", len(resp.Joined), len(resp.Other))
	}
	if resp.Joined[0].Title != "joined post" {
		t.Fatalf("unexpected joined group: %+v", resp.Joined)
	}
}

func TestSearchPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newPostHandler(ctrl)

	titleHit := &posts.Post{ID: primitive.NewObjectID(), Title: "Generics in Go", Content: "body"}
	commentHit := &posts.Post{ID: primitive.NewObjectID(), Title: "weekly thread", Content: "chat",
		CommentIDs: []interface{}{primitive.NewObjectID()}}
	miss := &posts.Post{ID: primitive.NewObjectID(), Title: "unrelated", Content: "nothing here"}

	m.posts.EXPECT().GetAll(gomock.Any()).Return([]*posts.Post{titleHit, commentHit, miss}, nil)
	m.tree.EXPECT().Search(gomock.Any(), commentHit.CommentIDs, []string{"generics"}).Return(true, nil)
	m.tree.EXPECT().Search(gomock.Any(), miss.CommentIDs, []string{"generics"}).Return(false, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/posts/search?q=Generics", nil)

	h.Search(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d: %s", w.Result().StatusCode, w.Body.String())
	}

	var matched []*posts.Post
	if err := json.NewDecoder(w.Body).Decode(&matched); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}

	// no terms
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/posts/search?q=++", nil)

	h.Search(w, r)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}
