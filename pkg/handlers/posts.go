package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"phreddit/pkg/comments"
	"phreddit/pkg/feed"
	"phreddit/pkg/flairs"
	"phreddit/pkg/links"
	"phreddit/pkg/posts"
	"phreddit/pkg/session"
	"phreddit/pkg/votes"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	PostsRepo       PostsRepo
	CommentsRepo    CommentsRepo
	CommunitiesRepo CommunitiesRepo
	FlairsRepo      FlairsRepo
	Tree            TreeService
	Ledger          VoteLedger
	Cascade         CascadeEngine
	Logger          *zap.SugaredLogger
}

type PostsRepo interface {
	GetAll(ctx context.Context) ([]*posts.Post, error)
	GetByID(ctx context.Context, id interface{}) (*posts.Post, error)
	GetByAuthor(ctx context.Context, displayName string) ([]*posts.Post, error)
	Add(ctx context.Context, p *posts.Post) (interface{}, error)
	Update(ctx context.Context, p *posts.Post) (bool, error)
	IncrementViews(ctx context.Context, id interface{}) (*posts.Post, error)
	ExistsByFlair(ctx context.Context, communityID, flairID interface{}) (bool, error)
	PushCommentID(ctx context.Context, postID, commentID interface{}) (bool, error)
	GetByCommentID(ctx context.Context, commentID interface{}) (*posts.Post, error)
	ParseID(in string) (interface{}, error)
}

type TreeService interface {
	ResolveTopLevel(ctx context.Context, p *posts.Post) ([]*comments.Comment, error)
	ResolveChildren(ctx context.Context, c *comments.Comment) ([]*comments.Comment, error)
	Search(ctx context.Context, refs []interface{}, terms []string) (bool, error)
}

type VoteLedger interface {
	Apply(ctx context.Context, kind votes.TargetKind, targetID interface{}, voter string, dir votes.Direction) (int, error)
}

type PostReq struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	CommunityID   *string `json:"communityID"`
	LinkFlairID   *string `json:"linkFlairID"`
	LinkFlairText *string `json:"linkFlairText"`
}

type VoteReq struct {
	Direction *string `json:"direction"`
}

type VoteResponse struct {
	VoteCount int `json:"voteCount"`
}

// PostResponse is a post with its top-level comments resolved in order.
type PostResponse struct {
	*posts.Post
	Comments []*comments.Comment `json:"comments"`
}

// FeedResponse splits the post collection by the viewer's memberships.
type FeedResponse struct {
	Joined []*posts.Post `json:"joined"`
	Other  []*posts.Post `json:"other"`
}

func (p *PostReq) validate(requireCommunity bool) []*CustomError {
	title := &Validator{value: p.Title, location: "body", field: "title"}
	titleErr := func() *CustomError {
		err := title.Required()
		if err != nil {
			return err
		}
		err = title.Empty()
		if err != nil {
			return err
		}
		err = title.MaxLength(posts.MaxTitleLength)
		if err != nil {
			return err
		}
		return title.Custom(func(value string) bool {
			return strings.TrimSpace(value) != ""
		}, "cannot be only whitespace")
	}()

	content := &Validator{value: p.Content, location: "body", field: "content"}
	contentErr := func() *CustomError {
		err := content.Required()
		if err != nil {
			return err
		}
		return content.Empty()
	}()

	var communityErr *CustomError
	if requireCommunity {
		community := &Validator{value: p.CommunityID, location: "body", field: "communityID"}
		communityErr = func() *CustomError {
			err := community.Required()
			if err != nil {
				return err
			}
			return community.Empty()
		}()
	}

	var flairErr *CustomError
	if p.LinkFlairText != nil && strings.TrimSpace(*p.LinkFlairText) != "" {
		flair := &Validator{value: p.LinkFlairText, location: "body", field: "linkFlairText"}
		flairErr = flair.MaxLength(flairs.MaxContentLength)
	}

	return mergeErrors(titleErr, contentErr, communityErr, flairErr)
}

// resolveFlair returns the flair id the post should carry: inline flair text
// mints a new flair and registers it on the community, otherwise an existing
// flair id is used as-is.
func (h *PostHandler) resolveFlair(ctx context.Context, req *PostReq, communityID interface{}) (interface{}, error) {
	if req.LinkFlairText != nil && strings.TrimSpace(*req.LinkFlairText) != "" {
		flairID, err := h.FlairsRepo.Add(ctx, &flairs.Flair{Content: strings.TrimSpace(*req.LinkFlairText)})
		if err != nil {
			return nil, err
		}
		_, err = h.CommunitiesRepo.AddFlair(ctx, communityID, flairID)
		if err != nil {
			return nil, err
		}
		return flairID, nil
	}

	if req.LinkFlairID != nil && *req.LinkFlairID != "" {
		return h.FlairsRepo.ParseID(*req.LinkFlairID)
	}

	return nil, nil
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req PostReq
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

	communityID, err := h.CommunitiesRepo.ParseID(*req.CommunityID)
	if err != nil {
		WriteResponse(w, "invalid community id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	community, err := h.CommunitiesRepo.GetByID(ctx, communityID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if community == nil {
		WriteResponse(w, "community not found", http.StatusNotFound)
		return
	}

	flairID, err := h.resolveFlair(ctx, &req, communityID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	post := &posts.Post{
		Title:       strings.TrimSpace(*req.Title),
		Content:     parsed.HTML,
		LinkFlairID: flairID,
		PostedBy:    sess.User.DisplayName,
		PostedDate:  time.Now(),
		CommentIDs:  []interface{}{},
		CommunityID: communityID,
		VotedBy:     []string{},
	}

	id, err := h.PostsRepo.Add(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	post.ID = id

	_, err = h.CommunitiesRepo.PushPostID(ctx, communityID, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, post, http.StatusCreated)
}

// GetAll returns the feed: posts split into the viewer's joined communities
// and the rest, ordered by the sort query parameter.
func (h *PostHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sortKey, err := feed.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		WriteResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postsDb, err := h.PostsRepo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	commentIndex := map[interface{}]*comments.Comment{}
	if sortKey == feed.Active {
		all, err := h.CommentsRepo.GetAll(ctx)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, c := range all {
			commentIndex[comments.RefID(c.ID)] = c
		}
	}

	joined := map[interface{}]bool{}
	if sess, err := session.SessionFromContext(r.Context()); err == nil {
		memberships, err := h.CommunitiesRepo.GetByMember(ctx, sess.User.DisplayName)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for _, c := range memberships {
			joined[comments.RefID(c.ID)] = true
		}
	}

	joinedGroup, otherGroup := feed.Compose(postsDb, commentIndex, joined, sortKey)
	writeJSON(w, &FeedResponse{Joined: joinedGroup, Other: otherGroup}, http.StatusOK)
}

func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	topLevel, err := h.Tree.ResolveTopLevel(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, &PostResponse{Post: post, Comments: topLevel}, http.StatusOK)
}

// Search returns posts that carry any of the whitespace-separated query
// terms in their title, their content, or anywhere in their comment tree.
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	terms := strings.Fields(strings.ToLower(r.URL.Query().Get("q")))
	if len(terms) == 0 {
		WriteResponse(w, "missing search terms", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	postsDb, err := h.PostsRepo.GetAll(ctx)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	matched := make([]*posts.Post, 0, len(postsDb))
	for _, p := range postsDb {
		if containsAnyTerm(p.Title, terms) || containsAnyTerm(p.Content, terms) {
			matched = append(matched, p)
			continue
		}

		found, err := h.Tree.Search(ctx, p.CommentIDs, terms)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if found {
			matched = append(matched, p)
		}
	}

	writeJSON(w, matched, http.StatusOK)
}

func containsAnyTerm(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func (h *PostHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	authored, err := h.PostsRepo.GetByAuthor(ctx, mux.Vars(r)["displayName"])
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, authored, http.StatusOK)
}

// View bumps the view counter and returns the refreshed post.
func (h *PostHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	post, err := h.PostsRepo.IncrementViews(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *PostHandler) Vote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, votes.TargetPost, h.PostsRepo.ParseID)
}

func (h *PostHandler) vote(w http.ResponseWriter, r *http.Request,
	kind votes.TargetKind, parseID func(string) (interface{}, error)) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid id", http.StatusBadRequest)
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

	tally, err := h.Ledger.Apply(ctx, kind, id, sess.User.DisplayName, dir)
	if err != nil {
		h.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	writeJSON(w, &VoteResponse{VoteCount: tally}, http.StatusOK)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
		return
	}

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		WriteResponse(w, "bad request", http.StatusBadRequest)
		return
	}

	var req PostReq
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

	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "post not found", http.StatusNotFound)
		return
	}
	if post.PostedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the author can edit a post", http.StatusForbidden)
		return
	}

	originalFlairID := post.LinkFlairID
	originalCommunityID := post.CommunityID

	post.Title = strings.TrimSpace(*req.Title)
	post.Content = parsed.HTML

	targetCommunityID := originalCommunityID
	if req.CommunityID != nil && *req.CommunityID != "" {
		targetCommunityID, err = h.CommunitiesRepo.ParseID(*req.CommunityID)
		if err != nil {
			WriteResponse(w, "invalid community id", http.StatusBadRequest)
			return
		}
	}

	flairID, err := h.resolveFlair(ctx, &req, targetCommunityID)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	post.LinkFlairID = flairID

	movedCommunity := comments.RefID(targetCommunityID) != comments.RefID(originalCommunityID)
	if movedCommunity {
		community, err := h.CommunitiesRepo.GetByID(ctx, targetCommunityID)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if community == nil {
			WriteResponse(w, "community not found", http.StatusNotFound)
			return
		}

		post.CommunityID = targetCommunityID
		if _, err := h.CommunitiesRepo.PullPostID(ctx, originalCommunityID, post.ID); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if _, err := h.CommunitiesRepo.PushPostID(ctx, targetCommunityID, post.ID); err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	_, err = h.PostsRepo.Update(ctx, post)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// The abandoned flair is garbage collected when no post in the original
	// community still wears it.
	flairChanged := comments.RefID(flairID) != comments.RefID(originalFlairID)
	if originalFlairID != nil && (flairChanged || movedCommunity) {
		stillUsed, err := h.PostsRepo.ExistsByFlair(ctx, originalCommunityID, originalFlairID)
		if err != nil {
			h.Logger.Error(err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if !stillUsed {
			if _, err := h.CommunitiesRepo.PullFlair(ctx, originalCommunityID, originalFlairID); err != nil {
				h.Logger.Error(err.Error())
			}
			if _, err := h.FlairsRepo.Delete(ctx, originalFlairID); err != nil {
				h.Logger.Error(err.Error())
			}
		}
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.PostsRepo.ParseID(mux.Vars(r)["id"])
	if err != nil {
		WriteResponse(w, "invalid post id", http.StatusBadRequest)
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

	post, err := h.PostsRepo.GetByID(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if post == nil {
		WriteResponse(w, "success", http.StatusOK)
		return
	}
	if post.PostedBy != sess.User.DisplayName && !sess.User.IsAdmin {
		WriteResponse(w, "only the author can delete a post", http.StatusForbidden)
		return
	}

	removed, err := h.Cascade.DeletePost(ctx, id)
	if err != nil {
		h.Logger.Error(err.Error())
		writeOutcome(w, err)
		return
	}

	writeJSON(w, removed, http.StatusOK)
}
