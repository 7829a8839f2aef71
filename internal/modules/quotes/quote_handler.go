package quotes

import (
	"errors"
	"net/http"

	"freight-compare/internal/models"

	"github.com/labstack/echo/v4"
)

const inchesToCm = 2.54

// Handler exposes the comparison endpoint. It owns request decoding and
// unit normalization; all pricing semantics live below the service.
type Handler struct {
	svc ServiceInterface
}

func NewHandler(svc ServiceInterface) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/quotes/compare", h.CompareQuotes)
}

// compareResponse wraps the ranked result with the no-coverage marker the
// client uses to offer a nearest-serviceable-pincode fallback.
type compareResponse struct {
	models.RankedResult
	NoCoverage bool `json:"no_coverage"`
}

// CompareQuotes runs a full comparison.
//  1. Bind and validate the request body.
//  2. Normalize inch dimensions to centimeters (the engines require cm).
//  3. Run the pipeline; only bad shipment data is a client error.
//  4. Return the ranked sections; an empty set is 200 with no_coverage.
func (h *Handler) CompareQuotes(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
	}
	if req.Mode == "" {
		req.Mode = models.ModeRoad
	}
	if req.DimensionUnit == "in" {
		for i := range req.Boxes {
			req.Boxes[i].LengthCm *= inchesToCm
			req.Boxes[i].WidthCm *= inchesToCm
			req.Boxes[i].HeightCm *= inchesToCm
		}
		req.DimensionUnit = "cm"
	}

	result, err := h.svc.CompareQuotes(ctx, req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidShipment) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "invalid shipment boxes"})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "failed to compare quotes"})
	}

	return c.JSON(http.StatusOK, compareResponse{
		RankedResult: result,
		NoCoverage:   result.Empty(),
	})
}
