package schema

// CatalogCreditTable represents the 'catalog.credit' junction table.
//
// One row is one credit edge between a film and a person. The unique
// constraint on (filmid, personid, role, department) keeps the credit graph
// free of duplicate edges across repeated imports.
type CatalogCreditTable struct {
	Table      string
	FilmID     string
	PersonID   string
	Role       string
	Department string
	Position   string
	CreatedAt  string
}

// CatalogCredit is the schema definition for catalog.credit
var CatalogCredit = CatalogCreditTable{
	Table:      "catalog.credit",
	FilmID:     "filmid",
	PersonID:   "personid",
	Role:       "role",
	Department: "department",
	Position:   "position",
	CreatedAt:  "createdat",
}
