package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/backend-template/internal/timeutil"
)

func TestTime_Current(t *testing.T) {
	t.Parallel()

	sydney, err := timeutil.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	tests := []struct {
		name          string
		now           time.Time
		wantLocal     string
		wantFormatted string
		wantOffset    float64
	}{
		{
			name:          "daylight saving",
			now:           time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			wantLocal:     "2024-01-15T21:30:00+11:00",
			wantFormatted: "2024-01-15 21:30:00",
			wantOffset:    11,
		},
		{
			name:          "standard time",
			now:           time.Date(2024, 7, 15, 10, 30, 0, 0, time.UTC),
			wantLocal:     "2024-07-15T20:30:00+10:00",
			wantFormatted: "2024-07-15 20:30:00",
			wantOffset:    10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewTime(sydney)
			h.now = func() time.Time { return tt.now }

			e := gin.New()
			e.GET("/time", h.Current)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/time", http.NoBody))
			require.Equal(t, http.StatusOK, w.Code)

			var body struct {
				UTCTime            string `json:"utc_time"`
				LocalTime          string `json:"local_time"`
				LocalFromUTC       string `json:"local_from_utc"`
				FormattedLocalTime string `json:"formatted_local_time"`
				TimezoneInfo       struct {
					UTCOffset     float64 `json:"utc_offset"`
					UTCTimezone   string  `json:"utc_timezone"`
					LocalTimezone string  `json:"local_timezone"`
				} `json:"timezone_info"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			assert.Equal(t, tt.now.Format(time.RFC3339), body.UTCTime)
			assert.Equal(t, tt.wantLocal, body.LocalTime)
			assert.Equal(t, tt.wantLocal, body.LocalFromUTC)
			assert.Equal(t, tt.wantFormatted, body.FormattedLocalTime)
			assert.InDelta(t, tt.wantOffset, body.TimezoneInfo.UTCOffset, 0.001)
			assert.Equal(t, "UTC", body.TimezoneInfo.UTCTimezone)
			assert.Equal(t, "Australia/Sydney", body.TimezoneInfo.LocalTimezone)
		})
	}
}
