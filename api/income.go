package api

import (
	"fmt"
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxIncomeRows 列表查询上限，超出部分静默截断
const maxIncomeRows = 1000

// IncomeHandler 月度收入处理器
// 收入记录按月份（YYYY-MM）作为业务主键操作，而非生成的 ID
type IncomeHandler struct {
	db *gorm.DB
}

// NewIncomeHandler 创建月度收入处理器
func NewIncomeHandler(db *gorm.DB) *IncomeHandler {
	return &IncomeHandler{db: db}
}

// CreateIncomeRequest 创建收入记录请求
// saved/home 缺省为 0
type CreateIncomeRequest struct {
	Month  string   `json:"month" binding:"required" example:"2025-04"`
	Income *float64 `json:"income" binding:"required" example:"1059769.54"`
	Saved  float64  `json:"saved" example:"0"`
	Home   float64  `json:"home" example:"0"`
}

// UpdateIncomeRequest 更新收入记录请求，仅更新显式传入的字段
type UpdateIncomeRequest struct {
	Income *float64 `json:"income" example:"1059769.54"`
	Saved  *float64 `json:"saved" example:"200000"`
	Home   *float64 `json:"home" example:"0"`
}

// List 获取全部收入记录
// @Summary 获取收入记录列表
// @Description 返回全部月度收入记录，顺序不保证，最多返回 1000 条
// @Tags 收入记录
// @Produce json
// @Success 200 {array} models.Income "获取成功"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	incomes := make([]models.Income, 0)
	if err := h.db.Limit(maxIncomeRows).Find(&incomes).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to query income records"))
		return
	}
	c.JSON(http.StatusOK, incomes)
}

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 创建某月的收入记录，同月已存在时返回 400 并提示改用 PUT 更新
// @Tags 收入记录
// @Accept json
// @Produce json
// @Param request body CreateIncomeRequest true "收入信息"
// @Success 201 {object} models.Income "创建成功"
// @Failure 400 {object} ErrorResponse "该月份已存在记录"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /api/income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		UnprocessableEntity(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}
	if _, err := time.Parse("2006-01", req.Month); err != nil {
		UnprocessableEntity(c, "month must be in YYYY-MM format")
		return
	}

	// 先检查该月份是否已有记录。检查与插入并非原子操作：并发创建同一
	// 月份时两个请求可能同时通过检查，这里按系统规模接受这一竞态，
	// 不加数据库唯一索引（批量导入允许同月多条，唯一索引会使其整批失败）
	var existing models.Income
	if err := h.db.Where("month = ?", req.Month).First(&existing).Error; err == nil {
		BadRequest(c, "Income record for this month already exists. Use PUT to update.")
		return
	}

	income := models.NewIncome(req.Month, *req.Income, req.Saved, req.Home)
	if err := h.db.Create(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to create income record"))
		return
	}

	c.JSON(http.StatusCreated, income)
}

// BulkCreate 批量创建收入记录
// @Summary 批量创建收入记录
// @Description 一次性创建多条收入记录。与单条创建不同，批量导入不做月份唯一性检查
// @Tags 收入记录
// @Accept json
// @Produce json
// @Param request body []CreateIncomeRequest true "收入记录数组"
// @Success 200 {object} MessageResponse "创建成功"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /api/income/bulk [post]
func (h *IncomeHandler) BulkCreate(c *gin.Context) {
	var reqs []CreateIncomeRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		UnprocessableEntity(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}

	incomes := make([]models.Income, 0, len(reqs))
	for _, req := range reqs {
		incomes = append(incomes, models.NewIncome(req.Month, *req.Income, req.Saved, req.Home))
	}

	if len(incomes) > 0 {
		if err := h.db.CreateInBatches(incomes, 100).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to create income records"))
			return
		}
	}

	Message(c, fmt.Sprintf("Created %d income records", len(incomes)))
}

// Update 更新收入记录
// @Summary 更新收入记录
// @Description 按月份部分更新收入记录，仅更新显式传入的字段，空更新集返回 400
// @Tags 收入记录
// @Accept json
// @Produce json
// @Param month path string true "月份 (YYYY-MM)"
// @Param request body UpdateIncomeRequest true "要更新的字段"
// @Success 200 {object} models.Income "更新成功"
// @Failure 400 {object} ErrorResponse "没有可更新的字段"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/income/{month} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	month := c.Param("month")

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}

	// 仅收集显式传入的字段
	updates := make(map[string]interface{})
	if req.Income != nil {
		updates["income"] = *req.Income
	}
	if req.Saved != nil {
		updates["saved"] = *req.Saved
	}
	if req.Home != nil {
		updates["home"] = *req.Home
	}
	if len(updates) == 0 {
		BadRequest(c, "No fields to update")
		return
	}

	var income models.Income
	if err := h.db.Where("month = ?", month).First(&income).Error; err != nil {
		NotFound(c, "Income record not found")
		return
	}

	if err := h.db.Model(&income).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to update income record"))
		return
	}

	// 重新获取更新后的记录
	h.db.Where("month = ?", month).First(&income)
	c.JSON(http.StatusOK, income)
}

// Delete 删除收入记录
// @Summary 删除收入记录
// @Description 按月份删除收入记录，记录不存在时返回 404
// @Tags 收入记录
// @Produce json
// @Param month path string true "月份 (YYYY-MM)"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/income/{month} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	month := c.Param("month")

	var income models.Income
	if err := h.db.Where("month = ?", month).First(&income).Error; err != nil {
		NotFound(c, "Income record not found")
		return
	}

	if err := h.db.Delete(&income).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to delete income record"))
		return
	}

	Message(c, "Income record deleted successfully")
}
