package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blockflix/blockflix/internal/model"
	"github.com/blockflix/blockflix/internal/queue"
	"github.com/blockflix/blockflix/internal/repository"
	queue_publisher "github.com/blockflix/blockflix/internal/service"
)

// RentalHandler exposes rent/return actions for the authenticated
// user.  The single-open-rental invariant is enforced here for API
// traffic the same way the simulator enforces it for seeded history:
// a second rental while one is open is rejected, and a broken
// invariant in storage surfaces as an error instead of being patched
// over.
type RentalHandler struct {
	Rentals *repository.RentalRepo
	Films   *repository.FilmRepo
}

func NewRentalHandler(r *repository.RentalRepo, f *repository.FilmRepo) *RentalHandler {
	return &RentalHandler{Rentals: r, Films: f}
}

type rentReq struct {
	FilmID uint64 `json:"film_id"`
}

type rentalResp struct {
	ID         uint64  `json:"id"`
	FilmID     uint64  `json:"film_id"`
	RentalDate string  `json:"rental_date"`
	ReturnDate *string `json:"return_date"`
}

func toRentalResp(r model.Rental) rentalResp {
	resp := rentalResp{
		ID:         r.ID,
		FilmID:     r.FilmID,
		RentalDate: r.RentalDate.Format("2006-01-02"),
	}
	if r.ReturnDate != nil {
		s := r.ReturnDate.Format("2006-01-02")
		resp.ReturnDate = &s
	}
	return resp
}

// Rent opens a new rental for the current user.
func (h *RentalHandler) Rent(c echo.Context) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token subject"})
	}
	var req rentReq
	if err := c.Bind(&req); err != nil || req.FilmID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "film_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	film, err := h.Films.GetByID(ctx, req.FilmID)
	if err != nil {
		if errors.Is(err, repository.ErrFilmNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "film not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rent failed"})
	}

	// One open rental per user: reject while one is out.
	_, err = h.Rentals.OpenByUser(ctx, uid)
	switch {
	case err == nil:
		return c.JSON(http.StatusConflict, echo.Map{"error": "an open rental already exists"})
	case errors.Is(err, repository.ErrNoOpenRental):
		// expected: proceed to rent
	case errors.Is(err, repository.ErrMultipleOpenRentals):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rental data integrity violation"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rent failed"})
	}

	now := time.Now().UTC()
	rental := model.Rental{FilmID: film.ID, UserID: uid, RentalDate: now}
	if err := h.Rentals.Create(ctx, &rental); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rent failed"})
	}

	// Best-effort event; a broker outage must not fail the request.
	_ = queue_publisher.PublishRentalActivity(ctx, queue.RentalActivityEvent{
		Action:     queue.ActionRented,
		RentalID:   rental.ID,
		UserID:     uid,
		FilmID:     film.ID,
		FilmTitle:  film.Title,
		OccurredAt: now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toRentalResp(rental))
}

// Return closes the current user's open rental.
func (h *RentalHandler) Return(c echo.Context) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token subject"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rental, err := h.Rentals.OpenByUser(ctx, uid)
	switch {
	case errors.Is(err, repository.ErrNoOpenRental):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no open rental"})
	case errors.Is(err, repository.ErrMultipleOpenRentals):
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "rental data integrity violation"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "return failed"})
	}

	now := time.Now().UTC()
	if err := h.Rentals.Close(ctx, rental.ID, now); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "return failed"})
	}
	rental.ReturnDate = &now

	var title string
	if film, err := h.Films.GetByID(ctx, rental.FilmID); err == nil {
		title = film.Title
	}
	_ = queue_publisher.PublishRentalActivity(ctx, queue.RentalActivityEvent{
		Action:     queue.ActionReturned,
		RentalID:   rental.ID,
		UserID:     uid,
		FilmID:     rental.FilmID,
		FilmTitle:  title,
		OccurredAt: now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, toRentalResp(*rental))
}

// List returns the current user's rental history, newest first.
func (h *RentalHandler) List(c echo.Context) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token subject"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rentals, err := h.Rentals.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list rentals failed"})
	}
	out := make([]rentalResp, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, toRentalResp(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
