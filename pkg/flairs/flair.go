package flairs

// Flair is a short label attached to posts. It lives only as long as at
// least one post references it.
type Flair struct {
	ID      interface{} `bson:"_id,omitempty" json:"id"`
	Content string      `bson:"content" json:"content"`
}

const MaxContentLength = 30
