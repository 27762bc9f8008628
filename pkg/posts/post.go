package posts

import "time"

// Post belongs to exactly one community. CommentIDs lists top-level comment
// references in creation order; replies hang off those comments. VoteCount
// may go negative, Views only grows.
type Post struct {
	ID          interface{}   `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Content     string        `bson:"content" json:"content"`
	LinkFlairID interface{}   `bson:"linkFlairID,omitempty" json:"linkFlairID,omitempty"`
	PostedBy    string        `bson:"postedBy" json:"postedBy"`
	PostedDate  time.Time     `bson:"postedDate" json:"postedDate"`
	CommentIDs  []interface{} `bson:"commentIDs" json:"commentIDs"`
	Views       int64         `bson:"views" json:"views"`
	CommunityID interface{}   `bson:"communityID" json:"communityID"`
	VoteCount   int           `bson:"voteCount" json:"voteCount"`
	VotedBy     []string      `bson:"votedBy" json:"votedBy"`
}

const MaxTitleLength = 100
