package handlers

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"phreddit/pkg/cascade"
	"phreddit/pkg/session"
	"phreddit/pkg/user"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

type UserHandler struct {
	Sm      session.SessionManager
	Repo    UsersRepo
	Cascade CascadeEngine
	Logger  *zap.SugaredLogger
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	GetByDisplayName(displayName string) (*user.User, error)
	GetAll() ([]*user.User, error)
	Add(u *user.User) (int64, error)
}

// CascadeEngine is the deletion entry point shared by the entity handlers.
type CascadeEngine interface {
	DeleteComment(ctx context.Context, id interface{}) (cascade.Removed, error)
	DeletePost(ctx context.Context, id interface{}) (cascade.Removed, error)
	DeleteCommunity(ctx context.Context, id interface{}) (cascade.Removed, error)
	DeleteUser(ctx context.Context, id int64) (cascade.Removed, error)
}

type RegisterReq struct {
	Email       *string `json:"email"`
	DisplayName *string `json:"displayName"`
	Password    *string `json:"password"`
	Password2   *string `json:"password2"`
}

type LoginReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Reputation  int    `json:"reputation"`
	IsAdmin     bool   `json:"isAdmin"`
}

func (r *RegisterReq) validate() []*CustomError {
	email := &Validator{value: r.Email, location: "body", field: "email"}
	emailErr := func() *CustomError {
		err := email.Required()
		if err != nil {
			return err
		}
		return email.Email()
	}()

	name := &Validator{value: r.DisplayName, location: "body", field: "displayName"}
	nameErr := func() *CustomError {
		err := name.Required()
		if err != nil {
			return err
		}
		err = name.Empty()
		if err != nil {
			return err
		}
		err = name.MaxLength(32)
		if err != nil {
			return err
		}
		return name.Custom(func(value string) bool {
			return strings.TrimSpace(value) == value
		}, "cannot start or end with whitespace")
	}()

	pwd := &Validator{value: r.Password, location: "body", field: "password"}
	pwdErr := func() *CustomError {
		err := pwd.Required()
		if err != nil {
			return err
		}
		err = pwd.Empty()
		if err != nil {
			return err
		}
		err = pwd.MinLength(8)
		if err != nil {
			return err
		}
		return pwd.MaxLength(72)
	}()

	var matchErr *CustomError
	if pwdErr == nil && r.Password2 != nil && *r.Password2 != *r.Password {
		matchErr = &CustomError{Location: "body", Param: "password2", Msg: "passwords do not match"}
	}

	var personalErr *CustomError
	if pwdErr == nil && emailErr == nil && nameErr == nil {
		lowered := strings.ToLower(*r.Password)
		if strings.Contains(lowered, strings.ToLower(*r.DisplayName)) ||
			strings.Contains(lowered, strings.ToLower(*r.Email)) {
			personalErr = &CustomError{Location: "body", Param: "password",
				Msg: "must not include personal info"}
		}
	}

	return mergeErrors(emailErr, nameErr, pwdErr, matchErr, personalErr)
}

func (r *LoginReq) validate() []*CustomError {
	email := &Validator{value: r.Email, location: "body", field: "email"}
	emailErr := func() *CustomError {
		err := email.Required()
		if err != nil {
			return err
		}
		return email.Empty()
	}()

	pwd := &Validator{value: r.Password, location: "body", field: "password"}
	pwdErr := func() *CustomError {
		err := pwd.Required()
		if err != nil {
			return err
		}
		return pwd.Empty()
	}()

	return mergeErrors(emailErr, pwdErr)
}

func (u *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req RegisterReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	conflicts := make([]*CustomError, 0, 2)
	existing, err := u.Repo.GetByEmail(*req.Email)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if existing != nil {
		conflicts = append(conflicts, &CustomError{Location: "body", Param: "email",
			Value: *req.Email, Msg: "email is already registered"})
	}

	existing, err = u.Repo.GetByDisplayName(*req.DisplayName)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if existing != nil {
		conflicts = append(conflicts, &CustomError{Location: "body", Param: "displayName",
			Value: *req.DisplayName, Msg: "display name is already taken"})
	}

	if len(conflicts) > 0 {
		writeErrorsResponse(w, conflicts, http.StatusUnprocessableEntity)
		return
	}

	salt := make([]byte, 8)
	rand.Read(salt)
	passHash := HashPass(salt, *req.Password)

	newUser := &user.User{
		Email:       *req.Email,
		DisplayName: *req.DisplayName,
		Password:    passHash,
		Reputation:  user.DefaultReputation,
		Created:     time.Now(),
	}

	id, err := u.Repo.Add(newUser)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	newUser.ID = id

	u.writeAuthResponse(w, newUser, http.StatusCreated)
}

func (u *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var req LoginReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate()
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	account, err := u.Repo.GetByEmail(*req.Email)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if account == nil || !checkPass(account.Password, *req.Password) {
		WriteResponse(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	u.writeAuthResponse(w, account, http.StatusOK)
}

func (u *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := u.Sm.Destroy(ctx, w, r)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "logout successful", http.StatusOK)
}

func (u *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sess, err := session.SessionFromContext(r.Context())
	if err != nil || !sess.User.IsAdmin {
		WriteResponse(w, "admin access required", http.StatusForbidden)
		return
	}

	users, err := u.Repo.GetAll()
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	profiles := make([]*ProfileResponse, 0, len(users))
	for _, usr := range users {
		profiles = append(profiles, mapToProfile(usr))
	}

	writeJSON(w, profiles, http.StatusOK)
}

func (u *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	account, err := u.Repo.GetByID(id)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if account == nil {
		WriteResponse(w, "user not found", http.StatusNotFound)
		return
	}

	writeJSON(w, mapToProfile(account), http.StatusOK)
}

// Delete removes the account and everything it anchors: created communities,
// authored posts and comments (with their subtrees), cast votes, memberships.
// Admins can delete anyone, everyone else only themselves.
func (u *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		WriteResponse(w, "invalid user id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if !sess.User.IsAdmin && sess.User.ID != id {
		WriteResponse(w, "cannot delete another user", http.StatusForbidden)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := u.Cascade.DeleteUser(ctx, id)
	if err != nil {
		u.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	err = u.Sm.DestroyAll(ctx, &session.User{ID: id})
	if err != nil {
		u.Logger.Error(err.Error())
	}

	writeJSON(w, removed, http.StatusOK)
}

func HashPass(salt []byte, plainPassword string) []byte {
	hashedPass := argon2.IDKey([]byte(plainPassword), []byte(salt), 1, 64*1024, 4, 32)
	return append(salt, hashedPass...)
}

func checkPass(passHash []byte, plainPassword string) bool {
	if len(passHash) < 8 {
		return false
	}
	salt := passHash[0:8]
	newSalt := make([]byte, len(salt))
	copy(newSalt, salt)
	usersPassHash := HashPass(newSalt, plainPassword)
	return bytes.Equal(usersPassHash, passHash)
}

func mapToProfile(u *user.User) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Reputation:  u.Reputation,
		IsAdmin:     u.IsAdmin,
	}
}

func (u *UserHandler) writeAuthResponse(w http.ResponseWriter, account *user.User, status int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	sessID := uuid.New().String()
	expiresAt := time.Now().Add(2 * time.Hour).Unix()
	token, err := u.Sm.Create(ctx, w, &session.User{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		IsAdmin:     account.IsAdmin,
	}, sessID, expiresAt)
	if err != nil {
		u.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &AuthResponse{Token: token, User: mapToProfile(account)}, status)
}
