package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/internal/api/handler"
	"github.com/gummy1803-ai/assessment-system/internal/api/middleware"
	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// limiter 为 nil 时不限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	// 校验错误使用 JSON 字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		dto.UseJSONFieldNames(v)
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitMB << 20))

	// ── 服务信息 ──
	r.GET("/", h.System.Info)
	r.GET("/health", h.System.Health)

	adminOnly := middleware.AdminAuth(jwtMgr, cfg.Auth.RequireToken)
	rateLimit := middleware.RateLimit(limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, logger)

	api := r.Group("/api")
	{
		// 认证
		api.POST("/auth/login", rateLimit, h.Auth.Login)

		// 干部
		cadres := api.Group("/cadres")
		{
			cadres.GET("", h.Cadre.ListCadres)
			cadres.GET("/:id", h.Cadre.GetCadre)
			cadres.POST("", h.Cadre.SaveCadre)
			cadres.DELETE("/:id", h.Cadre.DeleteCadre)
		}

		// 子记录
		registerRecords(api.Group("/competitions"), h.Competition)
		registerRecords(api.Group("/contributions"), h.Contribution)
		registerRecords(api.Group("/trainings"), h.Training)
		registerRecords(api.Group("/deductions"), h.Deduction)

		// 数据同步
		sync := api.Group("/sync")
		{
			sync.GET("/all", h.Sync.GetAll)
			sync.POST("/upload", adminOnly, h.Sync.Upload)
			sync.DELETE("/clear", adminOnly, h.Sync.Clear)
		}

		// 系统设置
		settings := api.Group("/settings", rateLimit, adminOnly)
		{
			settings.GET("/password", h.Setting.GetPassword)
			settings.POST("/password", h.Setting.UpdatePassword)
		}

		// 导出
		api.GET("/export/excel", h.Export.ExportExcel)
	}

	return r
}

// recordRoutes 子记录处理器的路由集合
type recordRoutes interface {
	List(c *gin.Context)
	ListByCadre(c *gin.Context)
	Create(c *gin.Context)
	Delete(c *gin.Context)
}

func registerRecords(g *gin.RouterGroup, h recordRoutes) {
	g.GET("", h.List)
	g.GET("/cadre/:id", h.ListByCadre)
	g.POST("", h.Create)
	g.DELETE("/:id", h.Delete)
}
