package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"phreddit/pkg/communities"
	"phreddit/pkg/links"
	"phreddit/pkg/session"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommunityHandler struct {
	Repo    CommunitiesRepo
	Cascade CascadeEngine
	Logger  *zap.SugaredLogger
}

type CommunitiesRepo interface {
	GetAll(ctx context.Context) ([]*communities.Community, error)
	GetByID(ctx context.Context, id interface{}) (*communities.Community, error)
	GetByName(ctx context.Context, name string) (*communities.Community, error)
	GetByCreator(ctx context.Context, displayName string) ([]*communities.Community, error)
	GetByMember(ctx context.Context, displayName string) ([]*communities.Community, error)
	Add(ctx context.Context, c *communities.Community) (interface{}, error)
	UpdateInfo(ctx context.Context, id interface{}, name, description string) (bool, error)
	AddMember(ctx context.Context, id interface{}, displayName string) (bool, error)
	RemoveMember(ctx context.Context, id interface{}, displayName string) (bool, error)
	AddFlair(ctx context.Context, id, flairID interface{}) (bool, error)
	PullFlair(ctx context.Context, id, flairID interface{}) (bool, error)
	PushPostID(ctx context.Context, id, postID interface{}) (bool, error)
	PullPostID(ctx context.Context, id, postID interface{}) (bool, error)
	ParseID(in string) (interface{}, error)
}

type CommunityReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (c *CommunityReq) validate() []*CustomError {
	name := &Validator{value: c.Name, location: "body", field: "name"}
	nameErr := func() *CustomError {
		err := name.Required()
		if err != nil {
			return err
		}
		err = name.Empty()
		if err != nil {
			return err
		}
		return name.MaxLength(communities.MaxNameLength)
	}()

	descr := &Validator{value: c.Description, location: "body", field: "description"}
	descrErr := func() *CustomError {
		err := descr.Required()
		if err != nil {
			return err
		}
		err = descr.Empty()
		if err != nil {
			return err
		}
		return descr.MaxLength(communities.MaxDescriptionLength)
	}()

	return mergeErrors(nameErr, descrErr)
}

// linkErrors converts link-parser failures into the shared validation shape.
func linkErrors(field string, parsed links.Result) []*CustomError {
	result := make([]*CustomError, 0, len(parsed.Errors))
	for _, msg := range parsed.Errors {
		result = append(result, &CustomError{Location: "body", Param: field, Msg: msg})
	}
	return result
}

func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CommunityReq
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

	parsed := links.Parse(*req.Description)
	if !parsed.Valid {
		writeErrorsResponse(w, linkErrors("description", parsed), http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := strings.ToLower(strings.TrimSpace(*req.Name))
	existing, err := h.Repo.GetByName(ctx, name)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if existing != nil {
		WriteResponse(w, "community name already exists", http.StatusConflict)
		return
	}

	community := &communities.Community{
		Name:        name,
		Description: parsed.HTML,
		CreatedBy:   sess.User.DisplayName,
		PostIDs:     []interface{}{},
		LinkFlairs:  []interface{}{},
		Members:     []string{sess.User.DisplayName},
		StartDate:   time.Now(),
	}

	id, err := h.Repo.Add(ctx, community)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	community.ID = id

	writeJSON(w, community, http.StatusCreated)
}

func (h *CommunityHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	all, err := h.Repo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, all, http.StatusOK)
}

func (h *CommunityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.Repo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid community id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	community, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if community == nil {
		WriteResponse(w, "community not found", http.StatusNotFound)
		return
	}

	writeJSON(w, community, http.StatusOK)
}

func (h *CommunityHandler) GetByCreator(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := h.Repo.GetByCreator(ctx, mux.Vars(r)["displayName"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, created, http.StatusOK)
}

func (h *CommunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.Repo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid community id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CommunityReq
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

	parsed := links.Parse(*req.Description)
	if !parsed.Valid {
		writeErrorsResponse(w, linkErrors("description", parsed), http.StatusUnprocessableEntity)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	community, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if community == nil {
		WriteResponse(w, "community not found", http.StatusNotFound)
		return
	}
	if community.CreatedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the creator can edit a community", http.StatusForbidden)
		return
	}

	name := strings.ToLower(strings.TrimSpace(*req.Name))
	if name != community.Name {
		existing, err := h.Repo.GetByName(ctx, name)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if existing != nil {
			WriteResponse(w, "community name already exists", http.StatusConflict)
			return
		}
	}

	_, err = h.Repo.UpdateInfo(ctx, id, name, parsed.HTML)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *CommunityHandler) Join(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, true)
}

func (h *CommunityHandler) Leave(w http.ResponseWriter, r *http.Request) {
	h.membership(w, r, false)
}

func (h *CommunityHandler) membership(w http.ResponseWriter, r *http.Request, join bool) {
	id, err := h.Repo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid community id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	community, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if community == nil {
		WriteResponse(w, "community not found", http.StatusNotFound)
		return
	}

	if join {
		_, err = h.Repo.AddMember(ctx, id, sess.User.DisplayName)
	} else {
		// The member set must never become empty.
		if community.MemberCount() <= 1 {
			WriteResponse(w, "cannot leave as the last member", http.StatusUnprocessableEntity)
			return
		}
		_, err = h.Repo.RemoveMember(ctx, id, sess.User.DisplayName)
	}
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}

func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.Repo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid community id", http.StatusBadRequest)
		return
	}

	sess, err := session.SessionFromContext(r.Context())
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	community, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if community == nil {
		// Absent root is already the desired end state.
		WriteResponse(w, "success", http.StatusOK)
		return
	}
	if community.CreatedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the creator can delete a community", http.StatusForbidden)
		return
	}

	removed, err := h.Cascade.DeleteCommunity(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	writeJSON(w, removed, http.StatusOK)
}
