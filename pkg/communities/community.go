package communities

import "time"

// Community names are stored lower-cased and unique. Members must stay
// non-empty for the community's lifetime; the creator is the first member.
type Community struct {
	ID          interface{}   `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	CreatedBy   string        `bson:"createdBy" json:"createdBy"`
	PostIDs     []interface{} `bson:"postIDs" json:"postIDs"`
	LinkFlairs  []interface{} `bson:"linkFlairs" json:"linkFlairs"`
	Members     []string      `bson:"members" json:"members"`
	StartDate   time.Time     `bson:"startDate" json:"startDate"`
}

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

func (c *Community) MemberCount() int {
	return len(c.Members)
}
