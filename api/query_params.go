package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tidewatch/tidewatch-backend/dto"
)

// decodeViewStateParams reads each query parameter independently. A garbled
// value falls back to that parameter's default without discarding the others,
// so ?urgency=IMMEDIATE&page=abc still filters by urgency.
func decodeViewStateParams(c *gin.Context) dto.ViewStateParams {
	return dto.ViewStateParams{
		Status:   c.Query("status"),
		Urgency:  c.Query("urgency"),
		Severity: c.Query("severity"),
		Sort:     c.Query("sort"),
		Customer: c.Query("customer"),
		Search:   c.Query("q"),
		Range:    lenientInt(c.Query("range")),
		Page:     lenientInt(c.Query("page")),
		Size:     lenientInt(c.Query("size")),
	}
}

func lenientInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
