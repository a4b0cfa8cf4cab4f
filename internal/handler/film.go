package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blockflix/blockflix/internal/model"
	"github.com/blockflix/blockflix/internal/repository"
)

// FilmHandler exposes the public film catalog.
type FilmHandler struct {
	Films *repository.FilmRepo
}

func NewFilmHandler(f *repository.FilmRepo) *FilmHandler { return &FilmHandler{Films: f} }

// filmListLimit caps the public listing; the catalog holds tens of
// thousands of films.
const filmListLimit = 100

type filmResp struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PosterURL   *string `json:"poster_url,omitempty"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	Length      *int    `json:"length"`
}

type actorResp struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type categoryResp struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type filmDetailResp struct {
	filmResp
	Actors     []actorResp    `json:"actors"`
	Categories []categoryResp `json:"categories"`
}

func toFilmResp(f model.Film) filmResp {
	r := filmResp{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		PosterURL:   f.PosterURL,
		Popularity:  f.Popularity,
		Length:      f.Length,
	}
	if f.ReleaseDate != nil {
		r.ReleaseDate = f.ReleaseDate.Format("2006-01-02")
	}
	return r
}

// List returns the most popular films.  The route sits behind the
// Redis response cache; the listing only changes on re-seed.
func (h *FilmHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	films, err := h.Films.ListTop(ctx, filmListLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list films failed"})
	}
	out := make([]filmResp, 0, len(films))
	for _, f := range films {
		out = append(out, toFilmResp(f))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}

// Get returns one film with its cast and categories.
func (h *FilmHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid film id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Films.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFilmNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get film failed"})
	}
	actors, err := h.Films.Actors(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get film failed"})
	}
	categories, err := h.Films.Categories(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "get film failed"})
	}

	resp := filmDetailResp{filmResp: toFilmResp(*f)}
	for _, a := range actors {
		resp.Actors = append(resp.Actors, actorResp{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName})
	}
	for _, cat := range categories {
		resp.Categories = append(resp.Categories, categoryResp{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, resp)
}
