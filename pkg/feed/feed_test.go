package feed

import (
	"testing"
	"time"

	"phreddit/pkg/comments"
	"phreddit/pkg/posts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var base = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func post(title string, community interface{}, posted time.Time, commentIDs ...interface{}) *posts.Post {
	if commentIDs == nil {
		commentIDs = []interface{}{}
	}
	return &posts.Post{
		ID:          primitive.NewObjectID(),
		Title:       title,
		CommunityID: community,
		PostedDate:  posted,
		CommentIDs:  commentIDs,
	}
}

func titles(group []*posts.Post) []string {
	out := make([]string, len(group))
	for i, p := range group {
		out[i] = p.Title
	}
	return out
}

func sameTitles(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComposePartitionAndOrder(t *testing.T) {
	joined := primitive.NewObjectID()
	other := primitive.NewObjectID()

	p1 := post("first", joined, base)
	p2 := post("second", other, base.Add(time.Hour))
	p3 := post("third", joined, base.Add(2*time.Hour))

	cases := []struct {
		name       string
		key        SortKey
		wantJoined []string
		wantOther  []string
	}{
		{"Newest", Newest, []string{"third", "first"}, []string{"second"}},
		{"Oldest", Oldest, []string{"first", "third"}, []string{"second"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j, o := Compose([]*posts.Post{p1, p2, p3}, nil,
				map[interface{}]bool{joined: true}, tc.key)
			if !sameTitles(titles(j), tc.wantJoined) {
				t.Errorf("joined group: expected %v, got %v", tc.wantJoined, titles(j))
			}
			if !sameTitles(titles(o), tc.wantOther) {
				t.Errorf("other group: expected %v, got %v", tc.wantOther, titles(o))
			}
		})
	}
}

// A deep reply bumps its post above a newer post that has no recent activity.
func TestComposeActiveUsesCommentClosure(t *testing.T) {
	community := primitive.NewObjectID()

	c1 := primitive.NewObjectID()
	c2 := primitive.NewObjectID()
	idx := map[interface{}]*comments.Comment{
		c1: {ID: c1, CommentedDate: base.Add(time.Hour), CommentIDs: []interface{}{c2}},
		c2: {ID: c2, CommentedDate: base.Add(48 * time.Hour)},
	}

	stale := post("stale", community, base.Add(24*time.Hour))
	lively := post("lively", community, base, c1)

	j, _ := Compose([]*posts.Post{stale, lively}, idx,
		map[interface{}]bool{community: true}, Active)
	want := []string{"lively", "stale"}
	if !sameTitles(titles(j), want) {
		t.Errorf("expected %v, got %v", want, titles(j))
	}
}

func TestComposeActiveFallsBackToPostDate(t *testing.T) {
	community := primitive.NewObjectID()
	older := post("older", community, base)
	newer := post("newer", community, base.Add(time.Hour))

	j, _ := Compose([]*posts.Post{older, newer}, nil,
		map[interface{}]bool{community: true}, Active)
	want := []string{"newer", "older"}
	if !sameTitles(titles(j), want) {
		t.Errorf("expected %v, got %v", want, titles(j))
	}
}

// Equal timestamps keep input order.
func TestComposeStableOnTies(t *testing.T) {
	community := primitive.NewObjectID()
	a := post("a", community, base)
	b := post("b", community, base)
	c := post("c", community, base)

	for _, key := range []SortKey{Newest, Oldest, Active} {
		j, _ := Compose([]*posts.Post{a, b, c}, nil,
			map[interface{}]bool{community: true}, key)
		want := []string{"a", "b", "c"}
		if !sameTitles(titles(j), want) {
			t.Errorf("%s: expected input order %v, got %v", key, want, titles(j))
		}
	}
}

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		raw     string
		want    SortKey
		wantErr bool
	}{
		{"newest", Newest, false},
		{"oldest", Oldest, false},
		{"active", Active, false},
		{"", Newest, false},
		{"hottest", "", true},
	}
	for _, tc := range cases {
		got, err := ParseSortKey(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected an error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}
