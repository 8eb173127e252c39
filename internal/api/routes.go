package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all endpoints onto the router. Staff routes require an
// active admin session; portal routes require an active client session.
func SetupRoutes(router *gin.Engine, handler *Handler, allowedOrigins []string) {
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/properties", handler.GetProperties)
		api.GET("/properties/stats", handler.GetPropertyStats)
		api.GET("/properties/cities", handler.GetLocations)
		api.GET("/properties/:id", handler.GetProperty)
		api.POST("/properties/match", handler.MatchProperties)

		api.POST("/messages", handler.CreateMessage)

		auth := api.Group("/auth")
		{
			auth.POST("/login", handler.Login)
			auth.POST("/logout", handler.Logout)
			auth.GET("/session", handler.GetSession)
		}

		portal := api.Group("/portal")
		{
			portal.POST("/register", handler.RegisterClient)
			portal.POST("/login", handler.LoginClient)
			portal.POST("/logout", handler.LogoutClient)
			portal.GET("/session", handler.GetClientSession)

			authed := portal.Group("", handler.requireClient)
			{
				authed.PUT("/profile", handler.UpdateProfile)
				authed.GET("/proposals", handler.GetPortalProposals)
				authed.POST("/proposals", handler.CreatePortalProposal)
				authed.GET("/messages", handler.GetPortalMessages)
			}
		}

		staff := api.Group("", handler.requireStaff)
		{
			staff.POST("/properties", handler.CreateProperty)
			staff.PUT("/properties/:id", handler.UpdateProperty)
			staff.DELETE("/properties/:id", handler.DeleteProperty)

			staff.GET("/clients", handler.GetClients)
			staff.POST("/clients", handler.CreateClient)
			staff.GET("/clients/:id", handler.GetClient)
			staff.PUT("/clients/:id", handler.UpdateClient)
			staff.DELETE("/clients/:id", handler.DeleteClient)
			staff.POST("/clients/:id/approve-update", handler.ApproveClientUpdate)
			staff.POST("/clients/:id/reject-update", handler.RejectClientUpdate)

			staff.GET("/proposals", handler.GetProposals)
			staff.POST("/proposals", handler.CreateProposal)
			staff.PATCH("/proposals/:id/status", handler.UpdateProposalStatus)

			staff.GET("/messages", handler.GetMessages)

			staff.GET("/export/json", handler.ExportJSON)
			staff.GET("/export/csv", handler.ExportCSV)
			staff.GET("/export/text", handler.ExportText)
			staff.GET("/export/nlp", handler.ExportNLP)
		}
	}
}

func (h *Handler) requireStaff(c *gin.Context) {
	if !h.auth.IsAdmin() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
		return
	}
	c.Next()
}

func (h *Handler) requireClient(c *gin.Context) {
	if _, ok := h.auth.CurrentClient(); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Client session required"})
		return
	}
	c.Next()
}
