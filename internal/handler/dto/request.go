package dto

type CreateReservaRequest struct {
	CanchaID        int64  `json:"cancha_id" binding:"required"`
	Tipo            string `json:"tipo" binding:"omitempty,oneof=F5 F10"`
	Fecha           string `json:"fecha" binding:"required"`
	Horario         string `json:"horario" binding:"required"`
	JugadorNombre   string `json:"jugador_nombre" binding:"required"`
	JugadorTelefono string `json:"jugador_telefono" binding:"required"`
	JugadorEmail    string `json:"jugador_email" binding:"required,email"`
	Comentarios     string `json:"comentarios"`
	Semanas         int    `json:"semanas" binding:"omitempty,min=2,max=8"`
}

type WebhookRequest struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	ExternalReference string `json:"external_reference"`
}
