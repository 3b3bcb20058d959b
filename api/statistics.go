package api

import (
	"net/http"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StatisticsHandler 汇总统计处理器
type StatisticsHandler struct {
	db *gorm.DB
}

// NewStatisticsHandler 创建汇总统计处理器
func NewStatisticsHandler(db *gorm.DB) *StatisticsHandler {
	return &StatisticsHandler{db: db}
}

// StatisticsResponse 汇总统计结果
// net_balance = total_income - total_spending，saved/home 仅作展示不参与结余计算
type StatisticsResponse struct {
	TotalSpending float64 `json:"total_spending"`
	TotalIncome   float64 `json:"total_income"`
	TotalSaved    float64 `json:"total_saved"`
	TotalHome     float64 `json:"total_home"`
	NetBalance    float64 `json:"net_balance"`
	SpendingCount int64   `json:"spending_count"`
	IncomeMonths  int64   `json:"income_months"`
}

// Get 获取汇总统计
// @Summary 获取汇总统计
// @Description 基于两个账本的当前内容实时计算汇总，不做缓存
// @Tags 统计
// @Produce json
// @Success 200 {object} StatisticsResponse "获取成功"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/statistics [get]
func (h *StatisticsHandler) Get(c *gin.Context) {
	var stats StatisticsResponse

	// 消费总额与条数
	if err := h.db.Model(&models.Spending{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalSpending).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}
	if err := h.db.Model(&models.Spending{}).Count(&stats.SpendingCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}

	// 收入各项总额与月份数
	var sums struct {
		Income float64
		Saved  float64
		Home   float64
	}
	if err := h.db.Model(&models.Income{}).
		Select("COALESCE(SUM(income), 0) AS income, COALESCE(SUM(saved), 0) AS saved, COALESCE(SUM(home), 0) AS home").
		Scan(&sums).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}
	if err := h.db.Model(&models.Income{}).Count(&stats.IncomeMonths).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to compute statistics"))
		return
	}

	stats.TotalIncome = sums.Income
	stats.TotalSaved = sums.Saved
	stats.TotalHome = sums.Home
	stats.NetBalance = stats.TotalIncome - stats.TotalSpending

	c.JSON(http.StatusOK, stats)
}
