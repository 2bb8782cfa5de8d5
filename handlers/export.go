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

// exportRequest is the wire shape shared by the xlsx and PDF export
// endpoints.
type exportRequest struct {
	Tipo string           `json:"tipo"`
	Form map[string]any   `json:"form"`
	List []map[string]any `json:"list"`

	Usuario struct {
		Nombre string `json:"nombre"`
		Correo string `json:"correo"`
	} `json:"usuario"`

	Totales map[string]float64 `json:"totales"`

	// Planner-only inputs.
	MontoTotal    float64  `json:"montoTotal"`
	FechasValidas []string `json:"fechasValidas"`
	RazonSocial   string   `json:"razonSocial"`
}

// bindReportRequest binds and validates the request envelope, returning the
// typed service request. Kind-specific validation (empty returns list,
// planner amounts) lives in the services layer.
func bindReportRequest(e *core.RequestEvent) (services.ReportRequest, error) {
	var body exportRequest
	if err := e.BindBody(&body); err != nil {
		return services.ReportRequest{}, fmt.Errorf("cuerpo de la petición inválido: %w", err)
	}

	if body.Tipo == "" {
		return services.ReportRequest{}, errors.New("falta el campo tipo")
	}
	kind, ok := services.ParseReportKind(body.Tipo)
	if !ok {
		return services.ReportRequest{}, fmt.Errorf("tipo de reporte desconocido: %q", body.Tipo)
	}

	// The planner carries its inputs at the top level; every other kind
	// needs the form metadata and the line list.
	if kind != services.KindPlanner {
		if body.Form == nil {
			return services.ReportRequest{}, errors.New("falta el campo form")
		}
		if body.List == nil {
			return services.ReportRequest{}, errors.New("falta el campo list")
		}
	}

	items := make([]services.LineItem, 0, len(body.List))
	for _, raw := range body.List {
		items = append(items, services.NewLineItem(raw))
	}

	return services.ReportRequest{
		Kind:          kind,
		Form:          body.Form,
		Items:         items,
		User:          services.UserInfo{Nombre: body.Usuario.Nombre, Correo: body.Usuario.Correo},
		Totals:        body.Totales,
		MontoTotal:    body.MontoTotal,
		FechasValidas: body.FechasValidas,
		RazonSocial:   body.RazonSocial,
	}, nil
}

// HandleExportXLSX returns the handler that builds a workbook from the JSON
// payload and streams it back as an attachment.
func HandleExportXLSX(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		req, err := bindReportRequest(e)
		if err != nil {
			log.Printf("export_xlsx: rejected request: %v", err)
			return e.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}

		file, err := services.BuildReport(req)
		if err != nil {
			var verr *services.ValidationError
			if errors.As(err, &verr) {
				log.Printf("export_xlsx: rejected %s request: %v", req.Kind, verr)
				return e.JSON(http.StatusBadRequest, map[string]string{"error": verr.Error()})
			}
			log.Printf("export_xlsx: failed to generate %s report: %v", req.Kind, err)
			return e.JSON(http.StatusInternalServerError, map[string]string{"error": "no se pudo generar el reporte"})
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
		e.Response.Write(file.Bytes)
		return nil
	}
}
