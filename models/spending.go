package models

import (
	"time"

	"github.com/google/uuid"
)

// Spending 消费记录模型
type Spending struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Category  string    `json:"category" gorm:"size:100;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"` // 格式: YYYY-MM-DD
	Amount    float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName 设置表名
func (Spending) TableName() string {
	return "spendings"
}

// NewSpending 构造一条消费记录，生成 UUID 与创建时间（UTC，仅在创建时设置）
func NewSpending(category, date string, amount float64) Spending {
	return Spending{
		ID:        uuid.NewString(),
		Category:  category,
		Date:      date,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
