package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"fintrack/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 检查月份不存在：SELECT 返回无记录
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs("2025-04").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/income", NewIncomeHandler(db).Create)

	body := `{"month":"2025-04","income":1059769.54,"saved":200000}`
	req := httptest.NewRequest("POST", "/api/income", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)
	var resp models.Income
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "2025-04", resp.Month)
	assert.Equal(t, 1059769.54, resp.Income)
	assert.Equal(t, 200000.0, resp.Saved)
	assert.Equal(t, 0.0, resp.Home)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Create_DuplicateMonth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 该月份已存在，直接拒绝，不触发 INSERT
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs("2025-04").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "income", "saved", "home", "created_at"}).
			AddRow("id-1", "2025-04", 1000.0, 0.0, 0.0, testTime()))

	router := gin.New()
	router.POST("/api/income", NewIncomeHandler(db).Create)

	body := `{"month":"2025-04","income":2000}`
	req := httptest.NewRequest("POST", "/api/income", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Income record for this month already exists. Use PUT to update.")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Create_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, db, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/income", NewIncomeHandler(db).Create)

	cases := []struct {
		name string
		body string
	}{
		{"缺少收入", `{"month":"2025-04"}`},
		{"月份格式错误", `{"month":"April 2025","income":1000}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/income", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, 422, w.Code)
		})
	}
}

func TestIncomeHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "income", "saved", "home", "created_at"}).
			AddRow("id-1", "2025-03", 900000.0, 100000.0, 0.0, testTime()).
			AddRow("id-2", "2025-04", 1059769.54, 200000.0, 0.0, testTime()))

	router := gin.New()
	router.GET("/api/income", NewIncomeHandler(db).List)

	req := httptest.NewRequest("GET", "/api/income", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []models.Income
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2025-03", resp[0].Month)
	assert.Equal(t, 1059769.54, resp[1].Income)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_BulkCreate_DuplicateMonths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	// 批量导入不做月份唯一性检查，同月多条也整批写入
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/income/bulk", NewIncomeHandler(db).BulkCreate)

	body := `[{"month":"2025-04","income":1000},{"month":"2025-04","income":2000}]`
	req := httptest.NewRequest("POST", "/api/income/bulk", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Created 2 income records")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "income", "saved", "home", "created_at"}).
			AddRow("id-1", "2025-04", 1000.0, 0.0, 0.0, testTime()))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "income", "saved", "home", "created_at"}).
			AddRow("id-1", "2025-04", 1000.0, 300000.0, 0.0, testTime()))

	router := gin.New()
	router.PUT("/api/income/:month", NewIncomeHandler(db).Update)

	body := `{"saved":300000}`
	req := httptest.NewRequest("PUT", "/api/income/2025-04", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp models.Income
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 300000.0, resp.Saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update_NoFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.PUT("/api/income/:month", NewIncomeHandler(db).Update)

	req := httptest.NewRequest("PUT", "/api/income/2025-04", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.PUT("/api/income/:month", NewIncomeHandler(db).Update)

	body := `{"income":5000}`
	req := httptest.NewRequest("PUT", "/api/income/2099-01", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Income record not found")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "month", "income", "saved", "home", "created_at"}).
			AddRow("id-1", "2025-04", 1000.0, 0.0, 0.0, testTime()))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/api/income/:month", NewIncomeHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/api/income/2025-04", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Income record deleted successfully")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.DELETE("/api/income/:month", NewIncomeHandler(db).Delete)

	req := httptest.NewRequest("DELETE", "/api/income/2099-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Income record not found")
	require.NoError(t, mock.ExpectationsWereMet())
}
