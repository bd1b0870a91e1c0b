package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListCanchas(c *ginext.Context)
	GetCancha(c *ginext.Context)
	GetDisponibilidad(c *ginext.Context)
	CreateReserva(c *ginext.Context)
	GetReserva(c *ginext.Context)
	CreatePago(c *ginext.Context)
	Webhook(c *ginext.Context)
	Retorno(c *ginext.Context)
	Simular(c *ginext.Context)
	GetEstadisticas(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Canchas
		api.GET("/canchas", h.ListCanchas)
		api.GET("/canchas/:id", h.GetCancha)
		api.GET("/canchas/:id/disponibilidad", h.GetDisponibilidad)

		// Reservas
		api.POST("/reservas", h.CreateReserva)
		api.GET("/reservas/:id", h.GetReserva)
		api.POST("/reservas/:id/pago", h.CreatePago)

		// Pagos
		api.POST("/pagos/webhook", h.Webhook)
		api.GET("/pagos/retorno", h.Retorno)
		api.GET("/pagos/simular", h.Simular)

		// Admin
		api.GET("/admin/estadisticas", h.GetEstadisticas)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
