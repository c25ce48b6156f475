package schema

// MediaPostTable represents the 'media.post' table
type MediaPostTable struct {
	Table     string
	ID        string
	AuthorID  string
	Kind      string
	Title     string
	Body      string
	ImageURL  string
	LikeCount string
	CreatedAt string
	UpdatedAt string
	DeletedAt string
}

// MediaPost is the schema definition for media.post
var MediaPost = MediaPostTable{
	Table:     "media.post",
	ID:        "id",
	AuthorID:  "authorid",
	Kind:      "kind",
	Title:     "title",
	Body:      "body",
	ImageURL:  "imageurl",
	LikeCount: "likecount",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
	DeletedAt: "deletedat",
}
