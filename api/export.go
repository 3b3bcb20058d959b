package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler 消费记录导出处理器
type ExportHandler struct {
	db *gorm.DB
}

// NewExportHandler 创建导出处理器
func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

// 按可选条件查询待导出的消费记录
// date 列为 YYYY-MM-DD 字符串，直接按字典序比较即可
func (h *ExportHandler) querySpendings(c *gin.Context) ([]models.Spending, bool) {
	query := h.db.Model(&models.Spending{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if start := c.Query("start_date"); start != "" {
		if _, err := time.Parse("2006-01-02", start); err != nil {
			BadRequest(c, "start_date must be in YYYY-MM-DD format")
			return nil, false
		}
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		if _, err := time.Parse("2006-01-02", end); err != nil {
			BadRequest(c, "end_date must be in YYYY-MM-DD format")
			return nil, false
		}
		query = query.Where("date <= ?", end)
	}

	var spendings []models.Spending
	if err := query.Order("date").Find(&spendings).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Failed to query spendings"))
		return nil, false
	}
	return spendings, true
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 按可选的类别与日期范围导出消费记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Param category query string false "类别筛选"
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	spendings, ok := h.querySpendings(c)
	if !ok {
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以兼容 Excel 打开
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "Category", "Date", "Amount", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	// 写入数据
	for _, spending := range spendings {
		row := []string{
			spending.ID,
			spending.Category,
			spending.Date,
			fmt.Sprintf("%.2f", spending.Amount),
			spending.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Failed to generate CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Failed to generate CSV")
		return
	}

	// 设置响应头
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=spendings.csv")
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON 导出消费记录为 JSON
// @Summary 导出消费记录为 JSON
// @Description 按可选的类别与日期范围导出消费记录及汇总信息
// @Tags 导出
// @Produce json
// @Param category query string false "类别筛选"
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "导出成功"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	spendings, ok := h.querySpendings(c)
	if !ok {
		return
	}

	// 计算汇总信息
	var totalAmount float64
	for _, spending := range spendings {
		totalAmount += spending.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"total_count":  len(spendings),
		"total_amount": totalAmount,
		"spendings":    spendings,
	})
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 按可选的类别与日期范围导出消费记录为 xlsx 文件，含汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param category query string false "类别筛选"
// @Param start_date query string false "开始日期 (YYYY-MM-DD)"
// @Param end_date query string false "结束日期 (YYYY-MM-DD)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} ErrorResponse "请求参数错误"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	spendings, ok := h.querySpendings(c)
	if !ok {
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Spendings"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 20)
	f.SetColWidth(sheetName, "C", "C", 14)
	f.SetColWidth(sheetName, "D", "D", 14)
	f.SetColWidth(sheetName, "E", "E", 24)

	// 写入表头
	headers := []string{"ID", "Category", "Date", "Amount", "CreatedAt"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalAmount float64
	for i, spending := range spendings {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), spending.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), spending.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), spending.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), spending.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), spending.CreatedAt.Format(time.RFC3339))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), dataStyle)
		totalAmount += spending.Amount
	}

	// 添加汇总行
	summaryRow := len(spendings) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("%d records", len(spendings)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("E%d", summaryRow), summaryStyle)

	// 设置响应头
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=spendings.xlsx")

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Failed to generate Excel file")
		return
	}
}
