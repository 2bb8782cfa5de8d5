package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reportcreation/services"
)

// HandleGetHolidays returns the fixed national holiday list for the
// requested year. Years without a loaded table answer 404 with an empty
// list so the calendar picker can degrade gracefully.
func HandleGetHolidays(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		year, _ := strconv.Atoi(e.Request.URL.Query().Get("year"))
		holidays := services.Holidays(year)
		if holidays == nil {
			return e.JSON(http.StatusNotFound, []services.Holiday{})
		}
		return e.JSON(http.StatusOK, holidays)
	}
}
