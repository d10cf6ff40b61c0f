package app

import (
	"eduportal_backend/docs"
	"eduportal_backend/internal/config"
	"eduportal_backend/internal/middleware"
	"eduportal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Auth relay channel between the shell and the micro-frontends.
	router.GET("/ws/relay", c.relay.Connect)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)
	}

	// Every curriculum route sits behind the same token check.
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		registerCRUD(api, "/niveaux", c.niveau.List, c.niveau.Create, c.niveau.Get, c.niveau.Update, c.niveau.Delete)
		registerCRUD(api, "/matieres", c.matiere.List, c.matiere.Create, c.matiere.Get, c.matiere.Update, c.matiere.Delete)
		registerCRUD(api, "/chapitres", c.chapitre.List, c.chapitre.Create, c.chapitre.Get, c.chapitre.Update, c.chapitre.Delete)
		registerCRUD(api, "/paragraphes", c.paragraphe.List, c.paragraphe.Create, c.paragraphe.Get, c.paragraphe.Update, c.paragraphe.Delete)
		registerCRUD(api, "/module-validations", c.moduleValidation.List, c.moduleValidation.Create, c.moduleValidation.Get, c.moduleValidation.Update, c.moduleValidation.Delete)
		registerCRUD(api, "/mini-jeux", c.miniJeu.List, c.miniJeu.Create, c.miniJeu.Get, c.miniJeu.Update, c.miniJeu.Delete)
		registerCRUD(api, "/exercices", c.exercice.List, c.exercice.Create, c.exercice.Get, c.exercice.Update, c.exercice.Delete)
		registerCRUD(api, "/question-reponses", c.questionReponse.List, c.questionReponse.Create, c.questionReponse.Get, c.questionReponse.Update, c.questionReponse.Delete)
		registerCRUD(api, "/animations-maison", c.animationMaison.List, c.animationMaison.Create, c.animationMaison.Get, c.animationMaison.Update, c.animationMaison.Delete)

		api.POST("/upload/image", c.upload.UploadImage)
	}
}

// registerCRUD wires the uniform five-route shape every curriculum
// entity exposes.
func registerCRUD(rg *gin.RouterGroup, base string, list, create, get, update, del gin.HandlerFunc) {
	rg.GET(base, list)
	rg.POST(base, create)
	rg.GET(base+"/:id", get)
	rg.PUT(base+"/:id", update)
	rg.DELETE(base+"/:id", del)
}
