package models

import (
	"time"

	"github.com/google/uuid"
)

// Income 月度收入记录模型
// month 为业务主键（每个月最多一条）。唯一性在写入口检查，
// 不建数据库唯一索引：批量导入按约定允许同月多条（见 api.IncomeHandler.BulkCreate）
type Income struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Month     string    `json:"month" gorm:"size:7;not null;index"` // 格式: YYYY-MM
	Income    float64   `json:"income" gorm:"type:decimal(14,2);not null"`
	Saved     float64   `json:"saved" gorm:"type:decimal(14,2);not null;default:0"`
	Home      float64   `json:"home" gorm:"type:decimal(14,2);not null;default:0"`
	CreatedAt time.Time `json:"created_at"`
}

func (Income) TableName() string {
	return "incomes"
}

// NewIncome 构造一条收入记录，生成 UUID 与创建时间（UTC，仅在创建时设置）
func NewIncome(month string, income, saved, home float64) Income {
	return Income{
		ID:        uuid.NewString(),
		Month:     month,
		Income:    income,
		Saved:     saved,
		Home:      home,
		CreatedAt: time.Now().UTC(),
	}
}
