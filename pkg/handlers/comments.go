package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"phreddit/pkg/comments"
	"phreddit/pkg/links"
	"phreddit/pkg/session"
	"phreddit/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type CommentHandler struct {
	CommentsRepo CommentsRepo
	PostsRepo    PostsRepo
	Ledger       VoteLedger
	Cascade      CascadeEngine
	Logger       *zap.SugaredLogger
}

type CommentsRepo interface {
	GetAll(ctx context.Context) ([]*comments.Comment, error)
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
	GetByAuthor(ctx context.Context, displayName string) ([]*comments.Comment, error)
	Add(ctx context.Context, c *comments.Comment) (interface{}, error)
	UpdateContent(ctx context.Context, id interface{}, content string) (bool, error)
	PushChildID(ctx context.Context, parentID, childID interface{}) (bool, error)
	ParseID(in string) (interface{}, error)
}

type CommentReq struct {
	Content    *string `json:"content"`
	ParentType *string `json:"parentType"`
	ParentID   *string `json:"parentID"`
}

func (c *CommentReq) validate(requireParent bool) []*CustomError {
	content := &Validator{value: c.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		err = content.Empty()
		if err != nil {
			return err
		}
		err = content.MaxLength(comments.MaxContentLength)
		if err != nil {
			return err
		}
		return content.Custom(func(value string) bool {
			return strings.TrimSpace(value) != ""
		}, "cannot be only whitespace")
	}()

	var parentTypeErr, parentIDErr *CustomError
	if requireParent {
		parentType := &Validator{value: c.ParentType, location: "body", field: "parentType"}
		parentTypeErr = func() *CustomError {
			err := parentType.Required()
			if err != nil {
				return err
			}
			return parentType.Custom(func(value string) bool {
				return value == "post" || value == "comment"
			}, `must be "post" or "comment"`)
		}()

		parentID := &Validator{value: c.ParentID, location: "body", field: "parentID"}
		parentIDErr = func() *CustomError {
			err := parentID.Required()
			if err != nil {
				return err
			}
			return parentID.Empty()
		}()
	}

	return mergeErrors(contentErr, parentTypeErr, parentIDErr)
}

// Create attaches a new comment under a post or another comment. The
// denormalized post root is carried onto every reply; when a parent comment
// lacks one, the owning post is found by scanning top-level comment lists.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CommentReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate(true)
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	parsed := links.Parse(*req.Content)
	if !parsed.Valid {
		writeErrorsResponse(w, linkErrors("content", parsed), http.StatusUnprocessableEntity)
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

	comment := &comments.Comment{
		Content:       parsed.HTML,
		CommentedBy:   sess.User.DisplayName,
		CommentedDate: time.Now(),
		CommentIDs:    []interface{}{},
		VotedBy:       []string{},
	}

	switch *req.ParentType {
	case "post":
		parentID, err := h.PostsRepo.ParseID(*req.ParentID)
		if err != nil {
			WriteResponse(w, "invalid parent id", http.StatusBadRequest)
			return
		}

		post, err := h.PostsRepo.GetByID(ctx, parentID)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if post == nil {
			WriteResponse(w, "parent post not found", http.StatusNotFound)
			return
		}

		comment.PostID = post.ID
		id, err := h.CommentsRepo.Add(ctx, comment)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		comment.ID = id

		if _, err := h.PostsRepo.PushCommentID(ctx, post.ID, id); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

	case "comment":
		parentID, err := h.CommentsRepo.ParseID(*req.ParentID)
		if err != nil {
			WriteResponse(w, "invalid parent id", http.StatusBadRequest)
			return
		}

		parent, err := h.CommentsRepo.GetByID(ctx, parentID)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if parent == nil {
			WriteResponse(w, "parent comment not found", http.StatusNotFound)
			return
		}

		if parent.PostID != nil {
			comment.PostID = parent.PostID
		} else {
			fallback, err := h.PostsRepo.GetByCommentID(ctx, parent.ID)
			if err != nil {
				h.Logger.Error(err.Error())
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if fallback != nil {
				comment.PostID = fallback.ID
			}
		}

		id, err := h.CommentsRepo.Add(ctx, comment)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		comment.ID = id

		if _, err := h.CommentsRepo.PushChildID(ctx, parent.ID, id); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, comment, http.StatusCreated)
}

func (h *CommentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	all, err := h.CommentsRepo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, all, http.StatusOK)
}

func (h *CommentHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	authored, err := h.CommentsRepo.GetByAuthor(ctx, mux.Vars(r)["displayName"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, authored, http.StatusOK)
}

func (h *CommentHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req VoteReq
	err = json.Unmarshal(body, &req)
	if err != nil || req.Direction == nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	dir, err := votes.ParseDirection(*req.Direction)
	if err != nil {
		writeOutcome(w, err)
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

	tally, err := h.Ledger.Apply(ctx, votes.TargetComment, id, sess.User.DisplayName, dir)
	if err != nil {
		h.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	writeJSON(w, &VoteResponse{VoteCount: tally}, http.StatusOK)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req CommentReq
	err = json.Unmarshal(body, &req)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	validationErrors := req.validate(false)
	if len(validationErrors) > 0 {
		writeErrorsResponse(w, validationErrors, http.StatusUnprocessableEntity)
		return
	}

	parsed := links.Parse(*req.Content)
	if !parsed.Valid {
		writeErrorsResponse(w, linkErrors("content", parsed), http.StatusUnprocessableEntity)
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

	comment, err := h.CommentsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if comment == nil {
		WriteResponse(w, "comment not found", http.StatusNotFound)
		return
	}
	if comment.CommentedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the author can edit a comment", http.StatusForbidden)
		return
	}

	_, err = h.CommentsRepo.UpdateContent(ctx, id, parsed.HTML)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	comment.Content = parsed.HTML
	writeJSON(w, comment, http.StatusOK)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.CommentsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid comment id", http.StatusBadRequest)
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

	comment, err := h.CommentsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if comment == nil {
		WriteResponse(w, "success", http.StatusOK)
		return
	}
	if comment.CommentedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the author can delete a comment", http.StatusForbidden)
		return
	}

	removed, err := h.Cascade.DeleteComment(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	writeJSON(w, removed, http.StatusOK)
}
