package comments

import "time"

// Comment is one node of the reply tree under a post. CommentIDs holds the
// ordered children; PostID is the denormalized root post, carried by every
// node so whole-tree operations can run as a flat filter.
type Comment struct {
	ID            interface{}   `bson:"_id,omitempty" json:"id"`
	Content       string        `bson:"content" json:"content"`
	CommentedBy   string        `bson:"commentedBy" json:"commentedBy"`
	CommentedDate time.Time     `bson:"commentedDate" json:"commentedDate"`
	CommentIDs    []interface{} `bson:"commentIDs" json:"commentIDs"`
	PostID        interface{}   `bson:"postID" json:"postID"`
	VoteCount     int           `bson:"voteCount" json:"voteCount"`
	VotedBy       []string      `bson:"votedBy" json:"votedBy"`
}

const MaxContentLength = 500

// RefID reduces a child reference to a bare identifier. References arrive
// either as ids or as already-expanded documents; lookups always want the id.
func RefID(ref interface{}) interface{} {
	switch v := ref.(type) {
	case *Comment:
		return v.ID
	case Comment:
		return v.ID
	case map[string]interface{}:
		if id, ok := v["_id"]; ok {
			return id
		}
	}
	return ref
}
