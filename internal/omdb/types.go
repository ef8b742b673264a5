// Package omdb provides a client for the OMDb movie metadata API.
package omdb

// SearchItem is one candidate returned by a free-text search.
type SearchItem struct {
	IMDBID string
	Title  string
	Year   string // start year only when the provider reports a range
	Poster string // empty when the provider has no poster
}

// Movie is a full provider record from a title or IMDb ID lookup.
type Movie struct {
	IMDBID string
	Title  string
	Year   string
	Genre  string // first listed genre, lowercased
	Plot   string
	Poster string // empty when the provider has no poster
	Rating string // IMDb rating as reported, may be "N/A"
}

// searchEnvelope matches the OMDb search response ("s=" queries).
// OMDb signals failure in-band with a string-typed Response field.
type searchEnvelope struct {
	Search       []searchEntry `json:"Search"`
	TotalResults string        `json:"totalResults"`
	Response     string        `json:"Response"`
	Error        string        `json:"Error"`
}

type searchEntry struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// movieEnvelope matches the OMDb single-record response ("t=" and "i=" queries).
type movieEnvelope struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Genre      string `json:"Genre"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	IMDBID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}
