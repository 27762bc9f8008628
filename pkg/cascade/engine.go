package cascade

import (
	"context"

	"phreddit/pkg/comments"
	"phreddit/pkg/communities"
	"phreddit/pkg/errs"
	"phreddit/pkg/posts"
	"phreddit/pkg/user"

	"go.uber.org/zap"
)

type PostsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*posts.Post, error)
	GetByCommunityID(ctx context.Context, communityID interface{}) ([]*posts.Post, error)
	GetByAuthor(ctx context.Context, displayName string) ([]*posts.Post, error)
	GetByVoter(ctx context.Context, displayName string) ([]*posts.Post, error)
	Delete(ctx context.Context, id interface{}) (bool, error)
	DeleteByIDs(ctx context.Context, ids []interface{}) (int64, error)
	ExistsByFlair(ctx context.Context, communityID, flairID interface{}) (bool, error)
	ExistsByFlairAnywhere(ctx context.Context, flairID interface{}) (bool, error)
	DetachComment(ctx context.Context, id interface{}) error
	ReverseVote(ctx context.Context, id interface{}, voter string) error
}

type CommentsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
	GetByIDs(ctx context.Context, ids []interface{}) ([]*comments.Comment, error)
	GetByAuthor(ctx context.Context, displayName string) ([]*comments.Comment, error)
	GetByVoter(ctx context.Context, displayName string) ([]*comments.Comment, error)
	DeleteByIDs(ctx context.Context, ids []interface{}) (int64, error)
	DeleteByPostID(ctx context.Context, postID interface{}) (int64, error)
	DeleteByPostIDs(ctx context.Context, postIDs []interface{}) (int64, error)
	DetachChild(ctx context.Context, id interface{}) error
	ReverseVote(ctx context.Context, id interface{}, voter string) error
}

type CommunitiesRepo interface {
	GetByID(ctx context.Context, id interface{}) (*communities.Community, error)
	GetByCreator(ctx context.Context, displayName string) ([]*communities.Community, error)
	Delete(ctx context.Context, id interface{}) (bool, error)
	PullPostID(ctx context.Context, id, postID interface{}) (bool, error)
	PullFlair(ctx context.Context, id, flairID interface{}) (bool, error)
	RemoveMemberEverywhere(ctx context.Context, displayName string) error
}

type FlairsRepo interface {
	Delete(ctx context.Context, id interface{}) (bool, error)
}

type UsersRepo interface {
	GetByID(id int64) (*user.User, error)
	Delete(id int64) (bool, error)
}

// Removed reports how many records each root-kind cascade took with it.
type Removed struct {
	Comments    int64 `json:"comments"`
	Posts       int64 `json:"posts"`
	Communities int64 `json:"communities"`
	Flairs      int64 `json:"flairs"`
	Users       int64 `json:"users"`
}

func (r *Removed) add(o Removed) {
	r.Comments += o.Comments
	r.Posts += o.Posts
	r.Communities += o.Communities
	r.Flairs += o.Flairs
	r.Users += o.Users
}

// Engine removes an entity together with its dependent closure. There is no
// rollback: sub-deletions run children-first so an interrupted cascade never
// leaves a live parent pointing at deleted children, and every operation is
// idempotent so a retry simply finishes the job.
type Engine struct {
	Posts       PostsRepo
	Comments    CommentsRepo
	Communities CommunitiesRepo
	Flairs      FlairsRepo
	Users       UsersRepo
	Logger      *zap.SugaredLogger
}

// DeleteComment removes the comment and its whole reply subtree, and detaches
// the root from whichever parent list referenced it. A missing root is a
// no-op, not an error.
func (e *Engine) DeleteComment(ctx context.Context, id interface{}) (Removed, error) {
	removed := Removed{}

	root, err := e.Comments.GetByID(ctx, id)
	if err != nil {
		return removed, errs.Wrap("fetch comment", err)
	}
	if root == nil {
		return removed, nil
	}

	// Detach before deleting: an orphaned live subtree is recoverable, a
	// live parent list pointing at deleted ids is not.
	if err := e.Posts.DetachComment(ctx, id); err != nil {
		return removed, errs.Wrap("detach comment from post", err)
	}
	if err := e.Comments.DetachChild(ctx, id); err != nil {
		return removed, errs.Wrap("detach comment from parent comment", err)
	}

	ids, err := e.collectSubtree(ctx, root)
	if err != nil {
		return removed, err
	}

	n, err := e.Comments.DeleteByIDs(ctx, ids)
	removed.Comments = n
	if err != nil {
		return removed, errs.Wrap("delete comment subtree", err)
	}

	return removed, nil
}

// collectSubtree walks children links iteratively with an explicit stack.
// The visited set guards against malformed graphs; each id is taken once no
// matter how deep or degenerate the tree is.
func (e *Engine) collectSubtree(ctx context.Context, root *comments.Comment) ([]interface{}, error) {
	visited := map[interface{}]bool{root.ID: true}
	collected := []interface{}{root.ID}

	stack := make([]interface{}, 0, len(root.CommentIDs))
	for _, ref := range root.CommentIDs {
		stack = append(stack, comments.RefID(ref))
	}

	for len(stack) > 0 {
		frontier := make([]interface{}, 0, len(stack))
		for _, id := range stack {
			if !visited[id] {
				visited[id] = true
				collected = append(collected, id)
				frontier = append(frontier, id)
			}
		}
		stack = stack[:0]

		if len(frontier) == 0 {
			break
		}

		children, err := e.Comments.GetByIDs(ctx, frontier)
		if err != nil {
			return nil, errs.Wrap("expand comment subtree", err)
		}
		for _, c := range children {
			for _, ref := range c.CommentIDs {
				id := comments.RefID(ref)
				if !visited[id] {
					stack = append(stack, id)
				}
			}
		}
	}

	return collected, nil
}

// DeletePost removes the post, every comment rooted at it (a flat filter on
// the denormalized post reference, equivalent to the recursive closure),
// the community's reference to it, and its flair when that flair is no
// longer used inside the community.
func (e *Engine) DeletePost(ctx context.Context, id interface{}) (Removed, error) {
	removed := Removed{}

	p, err := e.Posts.GetByID(ctx, id)
	if err != nil {
		return removed, errs.Wrap("fetch post", err)
	}
	if p == nil {
		return removed, nil
	}

	n, err := e.Comments.DeleteByPostID(ctx, id)
	removed.Comments = n
	if err != nil {
		return removed, errs.Wrap("delete post comments", err)
	}

	ok, err := e.Posts.Delete(ctx, id)
	if err != nil {
		return removed, errs.Wrap("delete post", err)
	}
	if ok {
		removed.Posts++
	}

	if _, err := e.Communities.PullPostID(ctx, p.CommunityID, id); err != nil {
		return removed, errs.Wrap("detach post from community", err)
	}

	if p.LinkFlairID != nil {
		n, err := e.reapUnusedFlair(ctx, p.CommunityID, p.LinkFlairID)
		removed.Flairs += n
		if err != nil {
			return removed, err
		}
	}

	return removed, nil
}

// reapUnusedFlair deletes the flair if no remaining post in the community
// references it, and drops it from the community's flair set.
func (e *Engine) reapUnusedFlair(ctx context.Context, communityID, flairID interface{}) (int64, error) {
	stillUsed, err := e.Posts.ExistsByFlair(ctx, communityID, flairID)
	if err != nil {
		return 0, errs.Wrap("check flair usage", err)
	}
	if stillUsed {
		return 0, nil
	}

	if _, err := e.Communities.PullFlair(ctx, communityID, flairID); err != nil {
		return 0, errs.Wrap("detach flair from community", err)
	}

	ok, err := e.Flairs.Delete(ctx, flairID)
	if err != nil {
		return 0, errs.Wrap("delete flair", err)
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}

// DeleteCommunity removes the community, all its posts, all comments under
// those posts, and any flair left unreferenced by posts anywhere.
func (e *Engine) DeleteCommunity(ctx context.Context, id interface{}) (Removed, error) {
	removed := Removed{}

	c, err := e.Communities.GetByID(ctx, id)
	if err != nil {
		return removed, errs.Wrap("fetch community", err)
	}
	if c == nil {
		return removed, nil
	}

	postsHere, err := e.Posts.GetByCommunityID(ctx, id)
	if err != nil {
		return removed, errs.Wrap("fetch community posts", err)
	}

	postIDs := make([]interface{}, 0, len(postsHere))
	flairSet := map[interface{}]bool{}
	for _, p := range postsHere {
		postIDs = append(postIDs, p.ID)
		if p.LinkFlairID != nil {
			flairSet[comments.RefID(p.LinkFlairID)] = true
		}
	}

	n, err := e.Comments.DeleteByPostIDs(ctx, postIDs)
	removed.Comments = n
	if err != nil {
		return removed, errs.Wrap("delete community comments", err)
	}

	n, err = e.Posts.DeleteByIDs(ctx, postIDs)
	removed.Posts = n
	if err != nil {
		return removed, errs.Wrap("delete community posts", err)
	}

	// Flairs may be shared across communities: only delete ones no post
	// anywhere still uses.
	for flairID := range flairSet {
		stillUsed, err := e.Posts.ExistsByFlairAnywhere(ctx, flairID)
		if err != nil {
			return removed, errs.Wrap("check flair usage", err)
		}
		if stillUsed {
			continue
		}
		ok, err := e.Flairs.Delete(ctx, flairID)
		if err != nil {
			return removed, errs.Wrap("delete flair", err)
		}
		if ok {
			removed.Flairs++
		}
	}

	ok, err := e.Communities.Delete(ctx, id)
	if err != nil {
		return removed, errs.Wrap("delete community", err)
	}
	if ok {
		removed.Communities++
	}

	return removed, nil
}

// DeleteUser removes the user and everything hanging off the display name:
// created communities (full cascade), authored posts (full cascade),
// authored comments with their reply subtrees, every vote the user cast,
// and all community memberships.
func (e *Engine) DeleteUser(ctx context.Context, id int64) (Removed, error) {
	removed := Removed{}

	u, err := e.Users.GetByID(id)
	if err != nil {
		return removed, errs.Wrap("fetch user", err)
	}
	if u == nil {
		return removed, nil
	}
	name := u.DisplayName

	createdCommunities, err := e.Communities.GetByCreator(ctx, name)
	if err != nil {
		return removed, errs.Wrap("fetch created communities", err)
	}
	for _, c := range createdCommunities {
		sub, err := e.DeleteCommunity(ctx, c.ID)
		removed.add(sub)
		if err != nil {
			return removed, err
		}
	}

	// Posts already removed by a community cascade no longer match this
	// query, so nothing is processed twice.
	authored, err := e.Posts.GetByAuthor(ctx, name)
	if err != nil {
		return removed, errs.Wrap("fetch authored posts", err)
	}
	for _, p := range authored {
		sub, err := e.DeletePost(ctx, p.ID)
		removed.add(sub)
		if err != nil {
			return removed, err
		}
	}

	n, err := e.deleteAuthoredComments(ctx, name)
	removed.Comments += n
	if err != nil {
		return removed, err
	}

	if err := e.reverseVotes(ctx, name); err != nil {
		return removed, err
	}

	if err := e.Communities.RemoveMemberEverywhere(ctx, name); err != nil {
		return removed, errs.Wrap("remove memberships", err)
	}

	ok, err := e.Users.Delete(id)
	if err != nil {
		return removed, errs.Wrap("delete user", err)
	}
	if ok {
		removed.Users++
	}

	return removed, nil
}

// deleteAuthoredComments computes the fixed point of "comments by name plus
// all replies under already-marked comments" and deletes the whole batch.
func (e *Engine) deleteAuthoredComments(ctx context.Context, name string) (int64, error) {
	seeds, err := e.Comments.GetByAuthor(ctx, name)
	if err != nil {
		return 0, errs.Wrap("fetch authored comments", err)
	}
	if len(seeds) == 0 {
		return 0, nil
	}

	marked := map[interface{}]bool{}
	all := make([]interface{}, 0, len(seeds))
	frontier := make([]interface{}, 0, len(seeds))

	for _, c := range seeds {
		if !marked[c.ID] {
			marked[c.ID] = true
			all = append(all, c.ID)
		}
		for _, ref := range c.CommentIDs {
			cid := comments.RefID(ref)
			if !marked[cid] {
				marked[cid] = true
				all = append(all, cid)
				frontier = append(frontier, cid)
			}
		}
	}

	for len(frontier) > 0 {
		batch, err := e.Comments.GetByIDs(ctx, frontier)
		if err != nil {
			return 0, errs.Wrap("expand authored comment closure", err)
		}
		frontier = frontier[:0]
		for _, c := range batch {
			for _, ref := range c.CommentIDs {
				cid := comments.RefID(ref)
				if !marked[cid] {
					marked[cid] = true
					all = append(all, cid)
					frontier = append(frontier, cid)
				}
			}
		}
	}

	// Detach the seeds from surviving parents; descendants only hang off
	// comments that are going away with them.
	for _, c := range seeds {
		if err := e.Posts.DetachComment(ctx, c.ID); err != nil {
			return 0, errs.Wrap("detach authored comment from post", err)
		}
		if err := e.Comments.DetachChild(ctx, c.ID); err != nil {
			return 0, errs.Wrap("detach authored comment from parent", err)
		}
	}

	n, err := e.Comments.DeleteByIDs(ctx, all)
	if err != nil {
		return n, errs.Wrap("delete authored comments", err)
	}

	return n, nil
}

// reverseVotes backs out every vote the user cast. The original direction
// was never stored, so reversal always decrements by one with a floor of
// zero.
func (e *Engine) reverseVotes(ctx context.Context, name string) error {
	votedPosts, err := e.Posts.GetByVoter(ctx, name)
	if err != nil {
		return errs.Wrap("fetch voted posts", err)
	}
	for _, p := range votedPosts {
		if err := e.Posts.ReverseVote(ctx, p.ID, name); err != nil {
			return errs.Wrap("reverse post vote", err)
		}
	}

	votedComments, err := e.Comments.GetByVoter(ctx, name)
	if err != nil {
		return errs.Wrap("fetch voted comments", err)
	}
	for _, c := range votedComments {
		if err := e.Comments.ReverseVote(ctx, c.ID, name); err != nil {
			return errs.Wrap("reverse comment vote", err)
		}
	}

	return nil
}

