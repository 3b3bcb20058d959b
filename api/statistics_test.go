package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 消费总额与条数
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(150.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	// 收入各项总额与月份数
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"income", "saved", "home"}).AddRow(200.0, 10.0, 5.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	router := gin.New()
	router.GET("/api/statistics", NewStatisticsHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/statistics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150.0, resp.TotalSpending)
	assert.Equal(t, 200.0, resp.TotalIncome)
	assert.Equal(t, 10.0, resp.TotalSaved)
	assert.Equal(t, 5.0, resp.TotalHome)
	assert.Equal(t, 50.0, resp.NetBalance)
	assert.Equal(t, int64(2), resp.SpendingCount)
	assert.Equal(t, int64(1), resp.IncomeMonths)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_Get_EmptyDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 空库时各项均为 0，COALESCE 保证 SUM 不返回 NULL
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(0.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"income", "saved", "home"}).AddRow(0.0, 0.0, 0.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	router := gin.New()
	router.GET("/api/statistics", NewStatisticsHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/statistics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.0, resp.TotalSpending)
	assert.Equal(t, 0.0, resp.NetBalance)
	assert.Equal(t, int64(0), resp.SpendingCount)
	assert.Equal(t, int64(0), resp.IncomeMonths)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatisticsHandler_Get_NegativeBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 支出大于收入时结余为负
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(500.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"income", "saved", "home"}).AddRow(100.0, 0.0, 0.0))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	router := gin.New()
	router.GET("/api/statistics", NewStatisticsHandler(db).Get)

	req := httptest.NewRequest("GET", "/api/statistics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp StatisticsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, -400.0, resp.NetBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}
