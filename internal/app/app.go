package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduportal_backend/internal/config"
	"eduportal_backend/internal/controller"
	"eduportal_backend/internal/relay"
	"eduportal_backend/internal/repository"
	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"
	"eduportal_backend/pkg/database"
	"eduportal_backend/pkg/logger"
	"eduportal_backend/pkg/monitoring"
	"eduportal_backend/pkg/security"
	"eduportal_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	user             *repository.UserRepository
	niveau           *repository.NiveauRepository
	matiere          *repository.MatiereRepository
	chapitre         *repository.ChapitreRepository
	paragraphe       *repository.ParagrapheRepository
	moduleValidation *repository.ModuleValidationRepository
	miniJeu          *repository.MiniJeuRepository
	exercice         *repository.ExerciceRepository
	questionReponse  *repository.QuestionReponseRepository
	animationMaison  *repository.AnimationMaisonRepository
}

type services struct {
	auth             *service.AuthService
	cache            *service.CacheService
	storage          *service.StorageService
	niveau           *service.NiveauService
	matiere          *service.MatiereService
	chapitre         *service.ChapitreService
	paragraphe       *service.ParagrapheService
	moduleValidation *service.ModuleValidationService
	miniJeu          *service.MiniJeuService
	exercice         *service.ExerciceService
	questionReponse  *service.QuestionReponseService
	animationMaison  *service.AnimationMaisonService
	relayHub         *relay.Hub
}

type controllers struct {
	auth             *controller.AuthController
	niveau           *controller.NiveauController
	matiere          *controller.MatiereController
	chapitre         *controller.ChapitreController
	paragraphe       *controller.ParagrapheController
	moduleValidation *controller.ModuleValidationController
	miniJeu          *controller.MiniJeuController
	exercice         *controller.ExerciceController
	questionReponse  *controller.QuestionReponseController
	animationMaison  *controller.AnimationMaisonController
	upload           *controller.UploadController
	relay            *controller.RelayController
	health           *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:             repository.NewUserRepository(db),
		niveau:           repository.NewNiveauRepository(db),
		matiere:          repository.NewMatiereRepository(db),
		chapitre:         repository.NewChapitreRepository(db),
		paragraphe:       repository.NewParagrapheRepository(db),
		moduleValidation: repository.NewModuleValidationRepository(db),
		miniJeu:          repository.NewMiniJeuRepository(db),
		exercice:         repository.NewExerciceRepository(db),
		questionReponse:  repository.NewQuestionReponseRepository(db),
		animationMaison:  repository.NewAnimationMaisonRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.cache = service.NewCacheService(rdb)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.niveau = service.NewNiveauService(repos.niveau, repos.chapitre, s.cache)
	s.matiere = service.NewMatiereService(repos.matiere, repos.niveau, s.cache)
	s.chapitre = service.NewChapitreService(repos.chapitre, repos.matiere, s.cache)
	s.paragraphe = service.NewParagrapheService(repos.paragraphe, repos.chapitre, s.cache)
	s.moduleValidation = service.NewModuleValidationService(repos.moduleValidation, repos.chapitre, s.cache)
	s.miniJeu = service.NewMiniJeuService(repos.miniJeu, repos.chapitre, repos.moduleValidation, s.cache)
	s.exercice = service.NewExerciceService(repos.exercice, repos.chapitre, s.cache)
	s.questionReponse = service.NewQuestionReponseService(repos.questionReponse, repos.exercice, s.cache)
	s.animationMaison = service.NewAnimationMaisonService(repos.animationMaison, repos.moduleValidation, s.cache)

	s.relayHub = relay.NewHub(cfg.Relay)
	go s.relayHub.Run()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:             controller.NewAuthController(s.auth),
		niveau:           controller.NewNiveauController(s.niveau),
		matiere:          controller.NewMatiereController(s.matiere),
		chapitre:         controller.NewChapitreController(s.chapitre),
		paragraphe:       controller.NewParagrapheController(s.paragraphe),
		moduleValidation: controller.NewModuleValidationController(s.moduleValidation),
		miniJeu:          controller.NewMiniJeuController(s.miniJeu),
		exercice:         controller.NewExerciceController(s.exercice),
		questionReponse:  controller.NewQuestionReponseController(s.questionReponse),
		animationMaison:  controller.NewAnimationMaisonController(s.animationMaison),
		upload:           controller.NewUploadController(s.storage),
		relay:            controller.NewRelayController(s.relayHub, a.Config),
		health:           controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("eduportal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

// ApplyConfig takes over the reloadable subset of a freshly parsed
// config. The auth middleware reads the JWT settings per request, so a
// rotated secret takes effect without a restart; everything else is
// captured at startup and needs one.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.JWT = cfg.JWT
	logger.Log.Info("Configuration reloaded")
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if a.services != nil && a.services.relayHub != nil {
		a.services.relayHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
