package votes

import (
	"context"

	"phreddit/pkg/comments"
	"phreddit/pkg/errs"
	"phreddit/pkg/posts"
	"phreddit/pkg/user"

	"go.uber.org/zap"
)

type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

func ParseDirection(in string) (Direction, error) {
	switch Direction(in) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	}
	return "", errs.Newf(errs.Validation, "invalid vote type %q", in)
}

func (d Direction) tallyDelta() int {
	if d == Up {
		return 1
	}
	return -1
}

// reputationDelta is what the target's author earns from the vote.
func (d Direction) reputationDelta() int {
	if d == Up {
		return 5
	}
	return -10
}

type PostsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*posts.Post, error)
	ApplyVote(ctx context.Context, id interface{}, voter string, delta int) (bool, error)
}

type CommentsRepo interface {
	GetByID(ctx context.Context, id interface{}) (*comments.Comment, error)
	ApplyVote(ctx context.Context, id interface{}, voter string, delta int) (bool, error)
}

type UsersRepo interface {
	GetByDisplayName(displayName string) (*user.User, error)
	AdjustReputation(displayName string, delta int) (bool, error)
}

// Ledger applies votes and propagates reputation to the target's author.
// The two writes are not atomic: the target tally commits first, and a
// failed reputation update is logged as a consistency warning rather than
// rolled back.
type Ledger struct {
	Posts    PostsRepo
	Comments CommentsRepo
	Users    UsersRepo
	Logger   *zap.SugaredLogger
}

// Apply records one vote by voter on the target and returns the new tally.
// Fail conditions, checked in order: target missing, voter missing, voter
// reputation below the voting threshold, duplicate vote.
func (l *Ledger) Apply(ctx context.Context, kind TargetKind, targetID interface{}, voter string, dir Direction) (int, error) {
	var author string
	var tally int

	switch kind {
	case TargetPost:
		p, err := l.Posts.GetByID(ctx, targetID)
		if err != nil {
			return 0, errs.Wrap("fetch vote target", err)
		}
		if p == nil {
			return 0, errs.New(errs.NotFound, "post not found")
		}
		author, tally = p.PostedBy, p.VoteCount
	case TargetComment:
		c, err := l.Comments.GetByID(ctx, targetID)
		if err != nil {
			return 0, errs.Wrap("fetch vote target", err)
		}
		if c == nil {
			return 0, errs.New(errs.NotFound, "comment not found")
		}
		author, tally = c.CommentedBy, c.VoteCount
	default:
		return 0, errs.Newf(errs.Validation, "unknown vote target kind %q", kind)
	}

	u, err := l.Users.GetByDisplayName(voter)
	if err != nil {
		return 0, errs.Wrap("fetch voter", err)
	}
	if u == nil {
		return 0, errs.Newf(errs.NotFound, "voter %q not found", voter)
	}
	if u.Reputation < user.MinVoteReputation {
		return 0, errs.New(errs.Permission, "insufficient reputation to vote")
	}

	// The voter-set membership check and the tally increment are one
	// conditional store update, closing the duplicate-vote race.
	applied, err := l.applyToTarget(ctx, kind, targetID, voter, dir.tallyDelta())
	if err != nil {
		return 0, errs.Wrap("apply vote", err)
	}
	if !applied {
		return 0, errs.New(errs.Permission, "already voted on this target")
	}

	l.propagate(author, dir)

	return tally + dir.tallyDelta(), nil
}

func (l *Ledger) applyToTarget(ctx context.Context, kind TargetKind, targetID interface{}, voter string, delta int) (bool, error) {
	if kind == TargetPost {
		return l.Posts.ApplyVote(ctx, targetID, voter, delta)
	}
	return l.Comments.ApplyVote(ctx, targetID, voter, delta)
}

// propagate credits the author's reputation. The vote has already committed
// at this point; a missing author account or a store failure here must not
// undo it.
func (l *Ledger) propagate(author string, dir Direction) {
	ok, err := l.Users.AdjustReputation(author, dir.reputationDelta())
	if err != nil {
		l.Logger.Warnf("reputation update for %q failed: %v", author, err)
		return
	}
	if !ok {
		l.Logger.Warnf("reputation update skipped: no account for author %q", author)
	}
}
