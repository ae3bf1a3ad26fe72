package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CalendarDay is one cell of the fixed six-week month grid.
type CalendarDay struct {
	Date       string  `json:"date"`
	Day        int     `json:"day"`
	OtherMonth bool    `json:"otherMonth"`
	Today      bool    `json:"today"`
	Events     []Event `json:"events"`
}

// 6 full weeks, so the grid has the same shape for every month
const calendarCells = 42

// buildMonthGrid lays out the month: the grid starts on the most recent
// Sunday on or before the 1st and runs 42 consecutive days. Events are
// attached to the cell whose ISO date equals their stored date string.
func buildMonthGrid(year int, month time.Month, today time.Time, events []Event) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	byDate := make(map[string][]Event, len(events))
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	todayStr := today.Format("2006-01-02")

	days := make([]CalendarDay, 0, calendarCells)
	for i := 0; i < calendarCells; i++ {
		d := start.AddDate(0, 0, i)
		iso := d.Format("2006-01-02")
		days = append(days, CalendarDay{
			Date:       iso,
			Day:        d.Day(),
			OtherMonth: d.Month() != month,
			Today:      iso == todayStr,
			Events:     byDate[iso],
		})
	}
	return days
}

// GetCalendar renders the grid for ?year=&month= (defaults: the current
// month).
func (app *App) GetCalendar(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := c.Query("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(c, http.StatusBadRequest, "invalid year")
			return
		}
		year = n
	}
	if v := c.Query("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			jsonError(c, http.StatusBadRequest, "invalid month (use 1-12)")
			return
		}
		month = n
	}

	var events []Event
	if err := app.DB.Find(&events).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, "db error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"label": fmt.Sprintf("%s %d", time.Month(month), year),
		"year":  year,
		"month": month,
		"days":  buildMonthGrid(year, time.Month(month), now, events),
	})
}
