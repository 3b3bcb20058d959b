package api

import (
	"net/http"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SeedHandler 初始数据导入处理器
type SeedHandler struct {
	db *gorm.DB
}

// NewSeedHandler 创建初始数据导入处理器
func NewSeedHandler(db *gorm.DB) *SeedHandler {
	return &SeedHandler{db: db}
}

// SeedSkippedResponse 已有数据时的响应
type SeedSkippedResponse struct {
	Message       string `json:"message"`
	Spendings     int64  `json:"spendings"`
	IncomeRecords int64  `json:"income_records"`
}

// SeedCreatedResponse 导入成功时的响应
type SeedCreatedResponse struct {
	Message              string `json:"message"`
	SpendingsCreated     int    `json:"spendings_created"`
	IncomeRecordsCreated int    `json:"income_records_created"`
}

// Seed 导入内置初始数据
// @Summary 导入内置初始数据
// @Description 仅当两个账本均为空时导入内置历史数据，否则返回现有条数且不做任何写入（幂等）
// @Tags 数据导入
// @Produce json
// @Success 200 {object} SeedCreatedResponse "导入成功或已有数据"
// @Failure 500 {object} ErrorResponse "导入失败"
// @Router /api/seed [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	var spendingCount, incomeCount int64
	if err := h.db.Model(&models.Spending{}).Count(&spendingCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to seed data"))
		return
	}
	if err := h.db.Model(&models.Income{}).Count(&incomeCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to seed data"))
		return
	}

	// 幂等保护：任一账本非空则不导入
	if spendingCount > 0 || incomeCount > 0 {
		c.JSON(http.StatusOK, SeedSkippedResponse{
			Message:       "Database already has data",
			Spendings:     spendingCount,
			IncomeRecords: incomeCount,
		})
		return
	}

	// 与批量创建走同一构造路径：每条生成新 UUID 与创建时间
	seedSpendings := models.SpendingSeedData()
	spendings := make([]models.Spending, 0, len(seedSpendings))
	for _, s := range seedSpendings {
		spendings = append(spendings, models.NewSpending(s.Category, s.Date, s.Amount))
	}
	if err := h.db.CreateInBatches(spendings, 100).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to seed data"))
		return
	}

	seedIncomes := models.IncomeSeedData()
	incomes := make([]models.Income, 0, len(seedIncomes))
	for _, i := range seedIncomes {
		incomes = append(incomes, models.NewIncome(i.Month, i.Income, i.Saved, i.Home))
	}
	if err := h.db.CreateInBatches(incomes, 100).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to seed data"))
		return
	}

	c.JSON(http.StatusOK, SeedCreatedResponse{
		Message:              "Database seeded successfully",
		SpendingsCreated:     len(spendings),
		IncomeRecordsCreated: len(incomes),
	})
}
