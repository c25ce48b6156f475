package schema

// SocialCommentTable represents the 'social.comment' table
type SocialCommentTable struct {
	Table     string
	ID        string
	SubjectID string
	AuthorID  string
	ParentID  string
	Body      string
	LikeCount string
	CreatedAt string
	UpdatedAt string
}

// SocialComment is the schema definition for social.comment
var SocialComment = SocialCommentTable{
	Table:     "social.comment",
	ID:        "id",
	SubjectID: "subjectid",
	AuthorID:  "authorid",
	ParentID:  "parentid",
	Body:      "body",
	LikeCount: "likecount",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}
