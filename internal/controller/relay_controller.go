package controller

import (
	"eduportal_backend/internal/config"
	"eduportal_backend/internal/relay"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RelayController struct {
	Hub    *relay.Hub
	Config *config.Config
}

func NewRelayController(hub *relay.Hub, cfg *config.Config) *RelayController {
	return &RelayController{Hub: hub, Config: cfg}
}

// Connect godoc
// @Summary Canal de relais d'authentification
// @Description Websocket reliant le shell et les micro-frontends; la fenêtre s'identifie via ?source=
// @Tags relay
// @Param source query string true "Tag de la fenêtre (frontend-shell, admin-mfe, student-mfe)"
// @Success 101 {string} string "Connexion établie"
// @Failure 400 {object} object "Source inconnue"
// @Router /ws/relay [get]
func (c *RelayController) Connect(ctx *gin.Context) {
	source := ctx.Query("source")
	if !c.knownSource(source) {
		util.ValidationErrors(ctx, "La source est inconnue.")
		return
	}
	relay.ServeWs(c.Hub, ctx.Writer, ctx.Request, source)
}

func (c *RelayController) knownSource(source string) bool {
	if source == c.Config.Relay.ContainerSource {
		return true
	}
	for _, s := range c.Config.Relay.ChildSources {
		if s == source {
			return true
		}
	}
	return false
}
