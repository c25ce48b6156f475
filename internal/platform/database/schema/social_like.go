package schema

// SocialLikeTable represents the 'social.like' table.
//
// The composite primary key (subjectid, userid) is the natural key of the
// like relation, which makes creation idempotent via ON CONFLICT DO NOTHING.
type SocialLikeTable struct {
	Table     string
	SubjectID string
	UserID    string
	CreatedAt string
}

// SocialLike is the schema definition for social.like
var SocialLike = SocialLikeTable{
	Table:     "social.like",
	SubjectID: "subjectid",
	UserID:    "userid",
	CreatedAt: "createdat",
}
