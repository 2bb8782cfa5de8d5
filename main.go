package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reportcreation/handlers"
)

func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Report exports ───────────────────────────────────────
		se.Router.POST("/export-xlsx", handlers.HandleExportXLSX(app))
		se.Router.POST("/export-pdf", handlers.HandleExportPDF(app))

		// ── Calendar lookup ──────────────────────────────────────
		se.Router.GET("/api/getHolidays", handlers.HandleGetHolidays(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
