package handlers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"phreddit/pkg/cascade"
	"phreddit/pkg/session"
	"phreddit/pkg/user"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var displayName = "vectoreal"
var email = "vectoreal@example.com"
var password = "secret_password"
var token = "test_token"
var passwordDB = HashPass(getSalt(), password)

func getSalt() []byte {
	salt := make([]byte, 8)
	rand.Read(salt)
	return salt
}

func contextWithSession(r *http.Request, sess *session.Session) context.Context {
	return context.WithValue(r.Context(), session.SessionKey, sess)
}

func newUserHandler(ctrl *gomock.Controller) (*UserHandler, *MockUsersRepo, *session.MockSessionManager, *MockCascadeEngine) {
	repo := NewMockUsersRepo(ctrl)
	sm := session.NewMockSessionManager(ctrl)
	eng := NewMockCascadeEngine(ctrl)
	h := &UserHandler{Sm: sm, Repo: repo, Cascade: eng, Logger: zap.NewNop().Sugar()}
	return h, repo, sm, eng
}

func loginRequest(body map[string]string) (*httptest.ResponseRecorder, *http.Request) {
	bodyBytes, _ := json.Marshal(body)
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(bodyBytes))
}

func TestLoginHappyCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, sm, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{"email": email, "password": password})

	account := &user.User{ID: 1, Email: email, DisplayName: displayName, Password: passwordDB}
	repo.EXPECT().GetByEmail(email).Return(account, nil)
	sm.EXPECT().
		Create(gomock.Any(), w, &session.User{ID: 1, DisplayName: displayName}, gomock.Any(), gomock.Any()).
		Return(token, nil)

	h.Login(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var resp AuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if resp.Token != token || resp.User.DisplayName != displayName {
		t.Fatalf("unexpected auth response: %+v", resp)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{"email": email, "password": password})

	repo.EXPECT().GetByEmail(email).Return(nil, nil)

	h.Login(w, r)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{"email": email, "password": "not_the_password"})

	account := &user.User{ID: 1, Email: email, DisplayName: displayName, Password: passwordDB}
	repo.EXPECT().GetByEmail(email).Return(account, nil)

	h.Login(w, r)

	if w.Result().StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusUnauthorized)
	}
}

func TestRegisterHappyCase(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, sm, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{
		"email": email, "displayName": displayName,
		"password": password, "password2": password,
	})

	repo.EXPECT().GetByEmail(email).Return(nil, nil)
	repo.EXPECT().GetByDisplayName(displayName).Return(nil, nil)
	repo.EXPECT().Add(gomock.Any()).Return(int64(1), nil)
	sm.EXPECT().
		Create(gomock.Any(), w, &session.User{ID: 1, DisplayName: displayName}, gomock.Any(), gomock.Any()).
		Return(token, nil)

	h.Register(w, r)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusCreated)
	}

	var resp AuthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if resp.User.Reputation != user.DefaultReputation {
		t.Fatalf("expected default reputation %d, got %d", user.DefaultReputation, resp.User.Reputation)
	}
}

func TestRegisterConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, repo, _, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{
		"email": email, "displayName": displayName,
		"password": password, "password2": password,
	})

	taken := &user.User{ID: 7, Email: email, DisplayName: displayName}
	repo.EXPECT().GetByEmail(email).Return(taken, nil)
	repo.EXPECT().GetByDisplayName(displayName).Return(taken, nil)

	h.Register(w, r)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusUnprocessableEntity)
	}

	var resp ErrorsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("expected two conflict errors, got %d", len(resp.Errors))
	}
}

func TestRegisterRejectsPersonalInfoPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, _ := newUserHandler(ctrl)
	pwd := "xx" + displayName + "99"
	w, r := loginRequest(map[string]string{
		"email": email, "displayName": displayName,
		"password": pwd, "password2": pwd,
	})

	h.Register(w, r)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, _ := newUserHandler(ctrl)
	w, r := loginRequest(map[string]string{
		"email": "not-an-email", "displayName": displayName,
		"password": password, "password2": password,
	})

	h.Register(w, r)

	if w.Result().StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestDeleteUserAsAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, sm, eng := newUserHandler(ctrl)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "2"})
	sess := &session.Session{User: &session.User{ID: 1, DisplayName: "admin", IsAdmin: true}}
	r = r.WithContext(contextWithSession(r, sess))

	eng.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(cascade.Removed{Users: 1}, nil)
	sm.EXPECT().DestroyAll(gomock.Any(), &session.User{ID: 2}).Return(nil)

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusOK)
	}

	var removed cascade.Removed
	if err := json.NewDecoder(w.Body).Decode(&removed); err != nil {
		t.Fatalf("unexpected error while reading response body: %s", err.Error())
	}
	if removed.Users != 1 {
		t.Fatalf("expected one removed user, got %+v", removed)
	}
}

func TestDeleteUserForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _, _, _ := newUserHandler(ctrl)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "2"})
	sess := &session.Session{User: &session.User{ID: 3, DisplayName: "someone"}}
	r = r.WithContext(contextWithSession(r, sess))

	h.Delete(w, r)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Fatalf("wrong status code: %d, but expected %d", w.Result().StatusCode, http.StatusForbidden)
	}
}
