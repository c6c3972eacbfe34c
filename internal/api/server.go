package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/tombdereus/gimcana-api/docs"
	v1 "github.com/tombdereus/gimcana-api/internal/api/handler/v1"
	"github.com/tombdereus/gimcana-api/internal/api/middleware"
	"github.com/tombdereus/gimcana-api/internal/config"
	"github.com/tombdereus/gimcana-api/internal/repository"
	"github.com/tombdereus/gimcana-api/internal/repository/dao"
	"github.com/tombdereus/gimcana-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	gimcanaHandler := s.initGimcanaHandler(db)
	s.MountHandlers(gimcanaHandler)

	return s
}

func (s *Server) initGimcanaHandler(db *gorm.DB) *v1.GimcanaHandler {
	gimcanaDAO := dao.NewGimcanaDAO(db)
	repo := repository.NewGimcanaRepository(gimcanaDAO)
	svc := service.NewGimcanaService(repo, s.Config.Gimcana.DefaultRaffleWinners)
	handler := v1.NewGimcanaHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(gimcanaHandler *v1.GimcanaHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	gimcana := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		gimcana.POST("/gimcana/scan", gimcanaHandler.HandleScan)
		gimcana.GET("/gimcana/campaigns", gimcanaHandler.HandleListCampaigns)
		gimcana.GET("/gimcana/campaigns/:campaignID", gimcanaHandler.HandleGetCampaign)
		gimcana.GET("/gimcana/campaigns/:campaignID/qr-codes", gimcanaHandler.HandleListQRCodes)
		gimcana.GET("/gimcana/campaigns/:campaignID/progress", gimcanaHandler.HandleGetProgress)
		gimcana.GET("/gimcana/campaigns/:campaignID/raffle-result", gimcanaHandler.HandleGetRaffleResult)
		gimcana.POST("/gimcana/campaigns/:campaignID/enter-raffle", gimcanaHandler.HandleEnterRaffle)
	}

	admin := s.Router.Group(basePath, authenticator.VerifyJWT(), authenticator.RequireAdmin())
	{
		admin.POST("/gimcana/campaigns", gimcanaHandler.HandleCreateCampaign)
		admin.GET("/gimcana/campaigns/:campaignID/participants", gimcanaHandler.HandleListParticipants)
		admin.GET("/gimcana/campaigns/:campaignID/raffle-participants", gimcanaHandler.HandleListRaffleParticipants)
		admin.POST("/gimcana/campaigns/:campaignID/execute-raffle", gimcanaHandler.HandleExecuteRaffle)
		admin.GET("/gimcana/raffles/history", gimcanaHandler.HandleRaffleHistory)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Gimcana API"
	docs.SwaggerInfo.Description = "QR scavenger hunt campaigns with direct prizes and raffles."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
