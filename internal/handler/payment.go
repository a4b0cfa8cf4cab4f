package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blockflix/blockflix/internal/repository"
)

// PaymentHandler exposes the authenticated user's payment ledger.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
}

func NewPaymentHandler(p *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{Payments: p}
}

type paymentResp struct {
	ID          uint64  `json:"id"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
}

// List returns the current user's payments, newest first.
func (h *PaymentHandler) List(c echo.Context) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token subject"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	payments, err := h.Payments.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list payments failed"})
	}
	out := make([]paymentResp, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentResp{
			ID:          p.ID,
			Amount:      p.Amount,
			PaymentDate: p.PaymentDate.Format("2006-01-02"),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out})
}
