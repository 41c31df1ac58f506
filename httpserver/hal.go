package httpserver

import (
	"fmt"
	"net/url"

	"moviecatalog/movie"

	"github.com/labstack/echo/v4"
)

type Link struct {
	Href string `json:"href"`
}

type MovieLinks struct {
	Self      Link  `json:"self"`
	Next      *Link `json:"next,omitempty"`
	Prev      *Link `json:"prev,omitempty"`
	AllMovies Link  `json:"allMovies"`
}

type MovieListResponse struct {
	Links       MovieLinks    `json:"_links"`
	Count       int64         `json:"count"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Data        []movie.Movie `json:"data"`
}

type MovieResponse struct {
	Links MovieLinks  `json:"_links"`
	Data  movie.Movie `json:"data"`
}

// moviesURL is the absolute URL of the movie collection as seen by the client.
func moviesURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host + "/movies"
}

// pageURL links a page of the listing, keeping the active search filters.
func pageURL(base string, f movie.Filter, number, limit int) string {
	href := fmt.Sprintf("%s?page=%d&limit=%d", base, number, limit)
	if f.Title != "" {
		href += "&title=" + url.QueryEscape(f.Title)
	}
	if f.Description != "" {
		href += "&description=" + url.QueryEscape(f.Description)
	}
	return href
}

func newMovieListResponse(base string, f movie.Filter, r movie.Result) MovieListResponse {
	p := r.Page
	links := MovieLinks{
		Self:      Link{Href: pageURL(base, f, p.Number, p.Limit)},
		AllMovies: Link{Href: base},
	}
	if r.HasNext() {
		links.Next = &Link{Href: pageURL(base, f, p.Number+1, p.Limit)}
	}
	if r.HasPrev() {
		links.Prev = &Link{Href: pageURL(base, f, p.Number-1, p.Limit)}
	}

	return MovieListResponse{
		Links:       links,
		Count:       r.Count,
		TotalPages:  r.TotalPages(),
		CurrentPage: p.Number,
		Data:        r.Movies,
	}
}

func newMovieResponse(base string, m movie.Movie) MovieResponse {
	return MovieResponse{
		Links: MovieLinks{
			Self:      Link{Href: base + "/" + url.PathEscape(m.ID)},
			AllMovies: Link{Href: base},
		},
		Data: m,
	}
}
