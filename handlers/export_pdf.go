package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"reportcreation/services"
)

// HandleExportPDF returns the handler for the PDF rendition of the order
// report. Every other report kind is rejected.
func HandleExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := bindReportRequest(e)
		if err != nil {
			log.Printf("export_pdf: rejected request: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		file, err := services.BuildOrderPDF(req)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				log.Printf("export_pdf: rejected %s request: %v", req.Kind, verr)
				return e.JSON(http.StatusBadRequest, map[string]string{"error": verr.Error()})
			}
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "no se pudo generar el PDF"})
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
		e.Response.Write(file.Bytes)
		return nil
	}
}
