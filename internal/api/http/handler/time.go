package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/backend-template/internal/timeutil"
)

// Time shows how instants render in the configured zone.
type Time struct {
	loc *time.Location
	now func() time.Time
}

func NewTime(loc *time.Location) *Time {
	return &Time{loc: loc, now: timeutil.UTCNow}
}

// Current godoc
// @Summary      Current time in UTC and the configured zone
// @Tags         time
// @Produce      json
// @Success      200  {object}  TimeResponse
// @Router       /time [get]
func (h *Time) Current(c *gin.Context) {
	utc := timeutil.ToUTC(h.now())
	local := timeutil.ToLocal(utc, h.loc)

	c.JSON(http.StatusOK, TimeResponse{
		UTCTime:            utc,
		LocalTime:          local,
		LocalFromUTC:       timeutil.ToLocal(utc, h.loc),
		FormattedLocalTime: timeutil.Format(utc, h.loc),
		TimezoneInfo: TimezoneInfo{
			UTCOffset:     timeutil.OffsetHours(local),
			UTCTimezone:   "UTC",
			LocalTimezone: h.loc.String(),
		},
	})
}
