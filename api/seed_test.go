package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fintrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedHandler_Seed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 两个账本均为空
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	spendingCount := len(models.SpendingSeedData())
	incomeCount := len(models.IncomeSeedData())

	// 消费数据超过单批大小，外层一个事务内按批写入
	mock.ExpectBegin()
	for i := 0; i < (spendingCount+99)/100; i++ {
		mock.ExpectExec("INSERT INTO `spendings`").
			WillReturnResult(sqlmock.NewResult(1, 100))
	}
	mock.ExpectCommit()

	// 收入数据不足一批，单事务写入
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, int64(incomeCount)))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/seed", NewSeedHandler(db).Seed)

	req := httptest.NewRequest("POST", "/api/seed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp SeedCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Database seeded successfully", resp.Message)
	assert.Equal(t, spendingCount, resp.SpendingsCreated)
	assert.Equal(t, incomeCount, resp.IncomeRecordsCreated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedHandler_Seed_AlreadyHasData(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 任一账本非空即跳过导入，不触发任何写入
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	router := gin.New()
	router.POST("/api/seed", NewSeedHandler(db).Seed)

	req := httptest.NewRequest("POST", "/api/seed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp SeedSkippedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Database already has data", resp.Message)
	assert.Equal(t, int64(42), resp.Spendings)
	assert.Equal(t, int64(0), resp.IncomeRecords)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedData_Shape(t *testing.T) {
	spendings := models.SpendingSeedData()
	incomes := models.IncomeSeedData()

	assert.Equal(t, 379, len(spendings))
	assert.Equal(t, 11, len(incomes))

	// 内置数据本身应当合法
	for _, s := range spendings {
		assert.NotEmpty(t, s.Category)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, s.Date)
	}
	months := make(map[string]bool)
	for _, i := range incomes {
		assert.Regexp(t, `^\d{4}-\d{2}$`, i.Month)
		assert.False(t, months[i.Month], "月份重复: %s", i.Month)
		months[i.Month] = true
	}
}
