package schema

// CatalogFilmTable represents the 'catalog.film' table
type CatalogFilmTable struct {
	Table       string
	ID          string
	TMDBID      string
	Slug        string
	Title       string
	Overview    string
	ReleaseDate string
	Runtime     string
	VoteAverage string
	IMDBID      string
	Genres      string
	TrailerURL  string
	LikeCount   string
	CreatedAt   string
	UpdatedAt   string
}

// CatalogFilm is the schema definition for catalog.film
var CatalogFilm = CatalogFilmTable{
	Table:       "catalog.film",
	ID:          "id",
	TMDBID:      "tmdbid",
	Slug:        "slug",
	Title:       "title",
	Overview:    "overview",
	ReleaseDate: "releasedate",
	Runtime:     "runtime",
	VoteAverage: "voteaverage",
	IMDBID:      "imdbid",
	Genres:      "genres",
	TrailerURL:  "trailerurl",
	LikeCount:   "likecount",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}
