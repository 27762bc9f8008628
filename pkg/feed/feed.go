package feed

import (
	"fmt"
	"sort"
	"time"

	"phreddit/pkg/comments"
	"phreddit/pkg/posts"
)

// SortKey selects the ordering applied to each feed group.
type SortKey string

const (
	Newest SortKey = "newest"
	Oldest SortKey = "oldest"
	Active SortKey = "active"
)

func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case Newest, Oldest, Active:
		return SortKey(raw), nil
	case "":
		return Newest, nil
	}
	return "", fmt.Errorf("unknown sort key %q", raw)
}

// Compose partitions postList into posts from communities the viewer has
// joined and everything else, each group ordered by key. It is a pure
// function of its inputs: commentIndex holds every comment keyed by id and
// joined holds the viewer's community ids.
func Compose(postList []*posts.Post, commentIndex map[interface{}]*comments.Comment,
	joined map[interface{}]bool, key SortKey) (joinedGroup, otherGroup []*posts.Post) {
	joinedGroup = []*posts.Post{}
	otherGroup = []*posts.Post{}
	for _, p := range postList {
		if joined[comments.RefID(p.CommunityID)] {
			joinedGroup = append(joinedGroup, p)
		} else {
			otherGroup = append(otherGroup, p)
		}
	}
	sortGroup(joinedGroup, commentIndex, key)
	sortGroup(otherGroup, commentIndex, key)
	return joinedGroup, otherGroup
}

func sortGroup(group []*posts.Post, commentIndex map[interface{}]*comments.Comment, key SortKey) {
	switch key {
	case Oldest:
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].PostedDate.Before(group[j].PostedDate)
		})
	case Active:
		stamps := make(map[*posts.Post]time.Time, len(group))
		for _, p := range group {
			stamps[p] = lastActivity(p, commentIndex)
		}
		sort.SliceStable(group, func(i, j int) bool {
			return stamps[group[j]].Before(stamps[group[i]])
		})
	default:
		sort.SliceStable(group, func(i, j int) bool {
			return group[j].PostedDate.Before(group[i].PostedDate)
		})
	}
}

// lastActivity walks the post's whole comment closure and returns the newest
// comment timestamp, or the post date when there are no comments.
func lastActivity(p *posts.Post, commentIndex map[interface{}]*comments.Comment) time.Time {
	latest := p.PostedDate
	visited := map[interface{}]bool{}
	queue := make([]interface{}, 0, len(p.CommentIDs))
	queue = append(queue, p.CommentIDs...)
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		id := comments.RefID(ref)
		if id == nil || visited[id] {
			continue
		}
		visited[id] = true
		c, ok := commentIndex[id]
		if !ok {
			continue
		}
		if c.CommentedDate.After(latest) {
			latest = c.CommentedDate
		}
		queue = append(queue, c.CommentIDs...)
	}
	return latest
}
