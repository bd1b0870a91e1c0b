package domain

// ReservaResumen is the read-side projection the statistics aggregate works
// over: one row per reserva joined with its cancha name.
type ReservaResumen struct {
	Estado       ReservaEstado
	Precio       int64
	Sena         int64
	SenaPagada   bool
	Fecha        string
	CanchaNombre string
	Tipo         *CanchaTipo
}

type CanchaPopularidad struct {
	Nombre   string `json:"nombre"`
	Reservas int    `json:"reservas"`
}

type ReservasDia struct {
	Fecha    string `json:"fecha"`
	Cantidad int    `json:"cantidad"`
}

type Estadisticas struct {
	TotalReservas       int                 `json:"total_reservas"`
	IngresosTotales     int64               `json:"ingresos_totales"`
	SenasRecaudadas     int64               `json:"senas_recaudadas"`
	CanchasMasPopulares []CanchaPopularidad `json:"canchas_mas_populares"`
	ReservasPorDia      []ReservasDia       `json:"reservas_por_dia"`
	OcupacionPromedio   int                 `json:"ocupacion_promedio"`
}
