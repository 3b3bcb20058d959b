package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportHandler_ExportCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "date", "amount", "created_at"}).
			AddRow("id-1", "Food", "2025-04-06", 11500.0, testTime()).
			AddRow("id-2", "Transport", "2025-04-07", 300.5, testTime()))

	router := gin.New()
	router.GET("/api/export/csv", NewExportHandler(db).ExportCSV)

	req := httptest.NewRequest("GET", "/api/export/csv", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "spendings.csv")
	assert.Contains(t, w.Body.String(), "ID,Category,Date,Amount,CreatedAt")
	assert.Contains(t, w.Body.String(), "id-1,Food,2025-04-06,11500.00")
	assert.Contains(t, w.Body.String(), "300.50")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_WithFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `spendings`").
		WithArgs("Food", "2025-04-01", "2025-04-30").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "date", "amount", "created_at"}).
			AddRow("id-1", "Food", "2025-04-06", 11500.0, testTime()))

	router := gin.New()
	router.GET("/api/export/csv", NewExportHandler(db).ExportCSV)

	req := httptest.NewRequest("GET", "/api/export/csv?category=Food&start_date=2025-04-01&end_date=2025-04-30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "id-1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_InvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_, db, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/api/export/csv", NewExportHandler(db).ExportCSV)

	req := httptest.NewRequest("GET", "/api/export/csv?start_date=04-01-2025", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "start_date must be in YYYY-MM-DD format")
}

func TestExportHandler_ExportJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "date", "amount", "created_at"}).
			AddRow("id-1", "Food", "2025-04-06", 100.0, testTime()).
			AddRow("id-2", "Transport", "2025-04-07", 50.0, testTime()))

	router := gin.New()
	router.GET("/api/export/json", NewExportHandler(db).ExportJSON)

	req := httptest.NewRequest("GET", "/api/export/json", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["total_count"])
	assert.Equal(t, 150.0, resp["total_amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportExcel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mock, db, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `spendings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "date", "amount", "created_at"}).
			AddRow("id-1", "Food", "2025-04-06", 11500.0, testTime()))

	router := gin.New()
	router.GET("/api/export/excel", NewExportHandler(db).ExportExcel)

	req := httptest.NewRequest("GET", "/api/export/excel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "spendings.xlsx")

	// 返回内容应当是可解析的 xlsx，且包含数据行与汇总行
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Spendings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "id-1", rows[1][0])
	assert.Equal(t, "Total", rows[2][0])
	require.NoError(t, mock.ExpectationsWereMet())
}
