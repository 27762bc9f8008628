package tree

import (
	"context"
	"strings"

	"phreddit/pkg/comments"
	"phreddit/pkg/errs"
	"phreddit/pkg/posts"
)

type CommentsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
}

// Service resolves and walks the reply forest under a post. All traversal is
// iterative over id references: depth is unbounded and must not be able to
// exhaust the call stack.
type Service struct {
	Comments CommentsRepo
}

// ResolveTopLevel returns the post's top-level comments in stored order.
// Dangling references resolve to nothing, and blank comments are dropped:
// they are render placeholders, not content.
func (s *Service) ResolveTopLevel(ctx context.Context, p *posts.Post) ([]*comments.Comment, error) {
	return s.resolveRefs(ctx, p.CommentIDs, true)
}

// ResolveChildren returns a comment's direct replies in stored order, with
// the same filtering as ResolveTopLevel.
func (s *Service) ResolveChildren(ctx context.Context, c *comments.Comment) ([]*comments.Comment, error) {
	return s.resolveRefs(ctx, c.CommentIDs, true)
}

func (s *Service) resolveRefs(ctx context.Context, refs []interface{}, skipBlank bool) ([]*comments.Comment, error) {
	result := make([]*comments.Comment, 0, len(refs))
	for _, ref := range refs {
		c, err := s.Comments.GetByID(ctx, comments.RefID(ref))
		if err != nil {
			return nil, errs.Wrap("resolve comment reference", err)
		}
		if c == nil {
			continue
		}
		if skipBlank && strings.TrimSpace(c.Content) == "" {
			continue
		}
		result = append(result, c)
	}

	return result, nil
}

// Search reports whether any comment in the subtrees rooted at refs contains
// any of the terms, case-insensitively. Unlike rendering, search visits
// blank comments too: their replies may still match.
func (s *Service) Search(ctx context.Context, refs []interface{}, terms []string) (bool, error) {
	lowered := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
			lowered = append(lowered, t)
		}
	}
	if len(lowered) == 0 {
		return false, nil
	}

	visited := map[interface{}]bool{}
	stack := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		stack = append(stack, comments.RefID(ref))
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		c, err := s.Comments.GetByID(ctx, id)
		if err != nil {
			return false, errs.Wrap("search comment subtree", err)
		}
		if c == nil {
			continue
		}

		content := strings.ToLower(c.Content)
		for _, term := range lowered {
			if strings.Contains(content, term) {
				return true, nil
			}
		}

		for _, ref := range c.CommentIDs {
			cid := comments.RefID(ref)
			if !visited[cid] {
				stack = append(stack, cid)
			}
		}
	}

	return false, nil
}

// Depth returns the distance of the comment from its owning post, 0 for a
// top-level comment, -1 when the id is nowhere in the post's forest.
func (s *Service) Depth(ctx context.Context, p *posts.Post, commentID interface{}) (int, error) {
	want := comments.RefID(commentID)

	visited := map[interface{}]bool{}
	level := make([]interface{}, 0, len(p.CommentIDs))
	for _, ref := range p.CommentIDs {
		level = append(level, comments.RefID(ref))
	}

	for depth := 0; len(level) > 0; depth++ {
		next := make([]interface{}, 0)
		for _, id := range level {
			if visited[id] {
				continue
			}
			visited[id] = true

			if id == want {
				return depth, nil
			}

			c, err := s.Comments.GetByID(ctx, id)
			if err != nil {
				return -1, errs.Wrap("walk comment forest", err)
			}
			if c == nil {
				continue
			}
			for _, ref := range c.CommentIDs {
				next = append(next, comments.RefID(ref))
			}
		}
		level = next
	}

	return -1, nil
}
