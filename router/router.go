package router

import (
	"time"

	"fintrack/api"
	"fintrack/config"
	_ "fintrack/docs"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version 对外展示的 API 版本号
const Version = "1.0.0"

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(middleware.CORS(cfg))

	spendingHandler := api.NewSpendingHandler(db)
	incomeHandler := api.NewIncomeHandler(db)
	statisticsHandler := api.NewStatisticsHandler(db)
	seedHandler := api.NewSeedHandler(db)
	exportHandler := api.NewExportHandler(db)

	// 批量写入口统一限流
	bulkLimit := middleware.RateLimit(30, time.Minute)

	apiGroup := r.Group("/api")
	{
		// 根路径健康信息
		apiGroup.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "FinTrack API is running",
				"version": Version,
			})
		})

		// 消费记录
		spendings := apiGroup.Group("/spendings")
		{
			spendings.GET("", spendingHandler.List)
			spendings.POST("", spendingHandler.Create)
			spendings.POST("/bulk", bulkLimit, spendingHandler.BulkCreate)
			spendings.PUT("/:id", spendingHandler.Update)
			spendings.DELETE("/:id", spendingHandler.Delete)
		}

		// 月度收入
		income := apiGroup.Group("/income")
		{
			income.GET("", incomeHandler.List)
			income.POST("", incomeHandler.Create)
			income.POST("/bulk", bulkLimit, incomeHandler.BulkCreate)
			income.PUT("/:month", incomeHandler.Update)
			income.DELETE("/:month", incomeHandler.Delete)
		}

		// 汇总统计
		apiGroup.GET("/statistics", statisticsHandler.Get)

		// 初始数据导入
		apiGroup.POST("/seed", bulkLimit, seedHandler.Seed)

		// 导出
		export := apiGroup.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
