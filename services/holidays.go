package services

// Holiday is one calendar entry in the fixed Peruvian holiday table the
// planner's date picker consults.
type Holiday struct {
	Date string `json:"date"` // dd/mm/yyyy
	Name string `json:"name"`
}

var holidays2025 = []Holiday{
	{Date: "01/01/2025", Name: "Año Nuevo"},
	{Date: "17/04/2025", Name: "Jueves Santo"},
	{Date: "18/04/2025", Name: "Viernes Santo"},
	{Date: "01/05/2025", Name: "Día del Trabajo"},
	{Date: "07/06/2025", Name: "Batalla de Arica y Día de la Bandera"},
	{Date: "29/06/2025", Name: "San Pedro y San Pablo"},
	{Date: "23/07/2025", Name: "Día de la Fuerza Aérea del Perú"},
	{Date: "28/07/2025", Name: "Fiestas Patrias"},
	{Date: "29/07/2025", Name: "Fiestas Patrias"},
	{Date: "06/08/2025", Name: "Batalla de Junín"},
	{Date: "30/08/2025", Name: "Santa Rosa de Lima"},
	{Date: "08/10/2025", Name: "Combate de Angamos"},
	{Date: "01/11/2025", Name: "Día de Todos los Santos"},
	{Date: "08/12/2025", Name: "Inmaculada Concepción"},
	{Date: "09/12/2025", Name: "Batalla de Ayacucho"},
}

// Holidays returns the national holidays for the given year. Only 2025 is
// loaded; any other year yields an empty list.
func Holidays(year int) []Holiday {
	if year == 2025 {
		return holidays2025
	}
	return nil
}
