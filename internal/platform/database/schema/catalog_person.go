package schema

// CatalogPersonTable represents the 'catalog.person' table
type CatalogPersonTable struct {
	Table        string
	ID           string
	TMDBID       string
	Slug         string
	Name         string
	Biography    string
	Birthday     string
	PlaceOfBirth string
	ProfileURL   string
	Department   string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogPerson is the schema definition for catalog.person
var CatalogPerson = CatalogPersonTable{
	Table:        "catalog.person",
	ID:           "id",
	TMDBID:       "tmdbid",
	Slug:         "slug",
	Name:         "name",
	Biography:    "biography",
	Birthday:     "birthday",
	PlaceOfBirth: "placeofbirth",
	ProfileURL:   "profileurl",
	Department:   "department",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
