package schema

// SocialNotificationTable represents the 'social.notification' table
type SocialNotificationTable struct {
	Table     string
	ID        string
	UserID    string
	Title     string
	Message   string
	Link      string
	IsRead    string
	CreatedAt string
}

// SocialNotification is the schema definition for social.notification
var SocialNotification = SocialNotificationTable{
	Table:     "social.notification",
	ID:        "id",
	UserID:    "userid",
	Title:     "title",
	Message:   "message",
	Link:      "link",
	IsRead:    "isread",
	CreatedAt: "createdat",
}
