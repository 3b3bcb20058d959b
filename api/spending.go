package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// maxSpendingRows 列表查询上限，超出部分静默截断（数据量设计上限为几千条）
const maxSpendingRows = 10000

// SpendingHandler 消费记录处理器
type SpendingHandler struct {
	db *gorm.DB
}

// NewSpendingHandler 创建消费记录处理器
func NewSpendingHandler(db *gorm.DB) *SpendingHandler {
	return &SpendingHandler{db: db}
}

// CreateSpendingRequest 创建消费记录请求
// amount 用指针以区分"未传"与 0，金额不限制正负
type CreateSpendingRequest struct {
	Category string   `json:"category" binding:"required" example:"Food"`
	Date     string   `json:"date" binding:"required" example:"2025-04-06"`
	Amount   *float64 `json:"amount" binding:"required" example:"11500"`
}

// UpdateSpendingRequest 更新消费记录请求，仅更新显式传入的字段
type UpdateSpendingRequest struct {
	Category *string  `json:"category" example:"Food"`
	Date     *string  `json:"date" example:"2025-04-06"`
	Amount   *float64 `json:"amount" example:"11500"`
}

// List 获取全部消费记录
// @Summary 获取消费记录列表
// @Description 返回全部消费记录，顺序即存储顺序，最多返回 10000 条
// @Tags 消费记录
// @Produce json
// @Success 200 {array} models.Spending "获取成功"
// @Failure 500 {object} ErrorResponse "查询失败"
// @Router /api/spendings [get]
func (h *SpendingHandler) List(c *gin.Context) {
	spendings := make([]models.Spending, 0)
	if err := h.db.Limit(maxSpendingRows).Find(&spendings).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to query spendings"))
		return
	}
	c.JSON(http.StatusOK, spendings)
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条新的消费记录，category/date/amount 均为必填，不做重复检查
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateSpendingRequest true "消费记录信息"
// @Success 201 {object} models.Spending "创建成功"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /api/spendings [post]
func (h *SpendingHandler) Create(c *gin.Context) {
	var req CreateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		UnprocessableEntity(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}

	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		UnprocessableEntity(c, "category must not be blank")
		return
	}
	// 仅校验日期格式，不校验是否真实存在的日历日
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		UnprocessableEntity(c, "date must be in YYYY-MM-DD format")
		return
	}

	spending := models.NewSpending(req.Category, req.Date, *req.Amount)
	if err := h.db.Create(&spending).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to create spending"))
		return
	}

	c.JSON(http.StatusCreated, spending)
}

// BulkCreate 批量创建消费记录
// @Summary 批量创建消费记录
// @Description 一次性创建多条消费记录，整体成功或整体失败；空数组为空操作
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body []CreateSpendingRequest true "消费记录数组"
// @Success 200 {object} MessageResponse "创建成功"
// @Failure 422 {object} ErrorResponse "请求参数错误"
// @Router /api/spendings/bulk [post]
func (h *SpendingHandler) BulkCreate(c *gin.Context) {
	var reqs []CreateSpendingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		UnprocessableEntity(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}

	spendings := make([]models.Spending, 0, len(reqs))
	for _, req := range reqs {
		spendings = append(spendings, models.NewSpending(req.Category, req.Date, *req.Amount))
	}

	if len(spendings) > 0 {
		if err := h.db.CreateInBatches(spendings, 100).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Failed to create spendings"))
			return
		}
	}

	Message(c, fmt.Sprintf("Created %d spending records", len(spendings)))
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 按 ID 部分更新消费记录，仅更新显式传入的字段，空更新集返回 400
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path string true "消费记录ID"
// @Param request body UpdateSpendingRequest true "要更新的字段"
// @Success 200 {object} models.Spending "更新成功"
// @Failure 400 {object} ErrorResponse "没有可更新的字段"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/spendings/{id} [put]
func (h *SpendingHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "Invalid request body"))
		return
	}

	// 仅收集显式传入的字段
	updates := make(map[string]interface{})
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			BadRequest(c, "category must not be blank")
			return
		}
		updates["category"] = category
	}
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			BadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		updates["date"] = *req.Date
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if len(updates) == 0 {
		BadRequest(c, "No fields to update")
		return
	}

	var spending models.Spending
	if err := h.db.Where("id = ?", id).First(&spending).Error; err != nil {
		NotFound(c, "Spending not found")
		return
	}

	if err := h.db.Model(&spending).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to update spending"))
		return
	}

	// 重新获取更新后的记录
	h.db.Where("id = ?", id).First(&spending)
	c.JSON(http.StatusOK, spending)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 按 ID 删除消费记录，记录不存在时返回 404（重复删除同一 ID 第二次报 404）
// @Tags 消费记录
// @Produce json
// @Param id path string true "消费记录ID"
// @Success 200 {object} MessageResponse "删除成功"
// @Failure 404 {object} ErrorResponse "记录不存在"
// @Router /api/spendings/{id} [delete]
func (h *SpendingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var spending models.Spending
	if err := h.db.Where("id = ?", id).First(&spending).Error; err != nil {
		NotFound(c, "Spending not found")
		return
	}

	if err := h.db.Delete(&spending).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to delete spending"))
		return
	}

	Message(c, "Spending deleted successfully")
}
