package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"phreddit/pkg/flairs"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type FlairHandler struct {
	Repo            FlairsRepo
	PostsRepo       FlairUsageRepo
	CommunitiesRepo CommunitiesRepo
	Logger          *zap.SugaredLogger
}

type FlairsRepo interface {
	GetAll(ctx context.Context) ([]*flairs.Flair, error)
	GetByID(ctx context.Context, id interface{}) (*flairs.Flair, error)
	Add(ctx context.Context, f *flairs.Flair) (interface{}, error)
	Delete(ctx context.Context, id interface{}) (bool, error)
	ParseID(in string) (interface{}, error)
}

type FlairUsageRepo interface {
	ExistsByFlairAnywhere(ctx context.Context, flairID interface{}) (bool, error)
}

type FlairReq struct {
	Content     *string `json:"content"`
	CommunityID *string `json:"communityID"`
}

func (f *FlairReq) validate() []*CustomError {
	content := &Validator{value: f.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		err = content.Empty()
		if err != nil {
			return err
		}
		return content.MaxLength(flairs.MaxContentLength)
	}()

	return mergeErrors(contentErr)
}

func (h *FlairHandler) GetAll(w http.ResponseWriter, r *http.Request) {
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

func (h *FlairHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req FlairReq
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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	flair := &flairs.Flair{Content: strings.TrimSpace(*req.Content)}
	id, err := h.Repo.Add(ctx, flair)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	flair.ID = id

	if req.CommunityID != nil && *req.CommunityID != "" {
		communityID, err := h.CommunitiesRepo.ParseID(*req.CommunityID)
		if err != nil {
			WriteResponse(w, "invalid community id", http.StatusBadRequest)
			return
		}
		if _, err := h.CommunitiesRepo.AddFlair(ctx, communityID, id); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, flair, http.StatusCreated)
}

// Delete refuses while any post anywhere still references the flair.
func (h *FlairHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.Repo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid flair id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inUse, err := h.PostsRepo.ExistsByFlairAnywhere(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if inUse {
		WriteResponse(w, "flair is still referenced by a post", http.StatusUnprocessableEntity)
		return
	}

	_, err = h.Repo.Delete(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	WriteResponse(w, "success", http.StatusOK)
}
