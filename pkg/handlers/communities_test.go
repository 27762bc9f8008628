package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"phreddit/pkg/cascade"
	"phreddit/pkg/communities"
	"phreddit/pkg/session"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newCommunityHandler(ctrl *gomock.Controller) (*CommunityHandler, *MockCommunitiesRepo, *MockCascadeEngine) {
	repo := NewMockCommunitiesRepo(ctrl)
	eng := NewMockCascadeEngine(ctrl)
	h := &CommunityHandler{
		Repo:    repo,
		Cascade: eng,
		Logger:  zap.NewNop().Sugar(),
	}
	return h, repo, eng
}

func TestCreateCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _ := newCommunityHandler(ctrl)

	id := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPost, map[string]string{
		"name":        "  GoLang  ",
		"description": "all things go",
	}, sess)

	repo.EXPECT().GetByName(gomock.Any(), "golang").Return(nil, nil)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *communities.Community) (interface{}, error) {
			if c.Name != "golang" {
				t.Errorf("expected lower-cased name, got %q", c.Name)
			}
			if len(c.Members) != 1 || c.Members[0] != displayName {
				t.Errorf("expected the creator to be the first member: %+v", c.Members)
			}
			return id, nil
		})

	h.Create(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("wrong status code: %d: %s", w.Result().StatusCode, w.Body.String())
	}
}

func TestCreateCommunityDuplicateName(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _ := newCommunityHandler(ctrl)

	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPost, map[string]string{
		"name":        "golang",
		"description": "all things go",
	}, sess)

	repo.EXPECT().GetByName(gomock.Any(), "golang").
		Return(&communities.Community{Name: "golang"}, nil)

	h.Create(w, r)

	if w.Result().StatusCode != http.StatusConflict {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusConflict)
	}
}

func TestLeaveLastMemberRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _ := newCommunityHandler(ctrl)

	id := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPatch, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})

	repo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(&communities.Community{ID: id, Members: []string{displayName}}, nil)

	h.Leave(w, r)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("wrong status code: %d, but expected %d: %s",
			w.Result().StatusCode, http.StatusUnprocessableEntity, w.Body.String())
	}
}

func TestLeaveCommunity(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _ := newCommunityHandler(ctrl)

	id := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodPatch, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})

	repo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(&communities.Community{ID: id, Members: []string{displayName, "other"}}, nil)
	repo.EXPECT().RemoveMember(gomock.Any(), id, displayName).Return(true, nil)

	h.Leave(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d: %s", w.Result().StatusCode, w.Body.String())
	}
}

func TestDeleteCommunityCascade(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, eng := newCommunityHandler(ctrl)

	id := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodDelete, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})

	repo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(&communities.Community{ID: id, CreatedBy: displayName}, nil)
	eng.EXPECT().DeleteCommunity(gomock.Any(), id).
		Return(cascade.Removed{Communities: 1, Posts: 2, Comments: 5, Flairs: 1}, nil)

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d: %s", w.Result().StatusCode, w.Body.String())
	}

	var removed cascade.Removed
	if err := json.NewDecoder(w.Body).Decode(&removed); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if removed.Posts != 2 || removed.Comments != 5 {
		t.Fatalf("unexpected removal counts: %+v", removed)
	}
}

func TestDeleteCommunityForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _ := newCommunityHandler(ctrl)

	id := primitive.NewObjectID()
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: displayName}}
	w, r := sessionRequest(http.MethodDelete, nil, sess)
	r = mux.SetURLVars(r, map[string]string{"id": id.Hex()})

	repo.EXPECT().ParseID(id.Hex()).Return(id, nil)
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(&communities.Community{ID: id, CreatedBy: "someone_else"}, nil)

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusForbidden)
	}
}
