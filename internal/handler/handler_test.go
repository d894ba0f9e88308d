package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"worklog-tracker/internal/models"
	"worklog-tracker/internal/repository"
	"worklog-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	workLogRepo, err := repository.NewGormWorkLogRepository(db)
	if err != nil {
		t.Fatalf("work log repository: %v", err)
	}
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		t.Fatalf("user repository: %v", err)
	}
	departmentRepo, err := repository.NewDepartmentRepository(db)
	if err != nil {
		t.Fatalf("department repository: %v", err)
	}
	customerRepo, err := repository.NewCustomerRepository(db)
	if err != nil {
		t.Fatalf("customer repository: %v", err)
	}
	projectRepo, err := repository.NewProjectRepository(db)
	if err != nil {
		t.Fatalf("project repository: %v", err)
	}
	categoryRepo, err := repository.NewWorkCategoryRepository(db)
	if err != nil {
		t.Fatalf("work category repository: %v", err)
	}
	subCategoryRepo, err := repository.NewWorkSubCategoryRepository(db)
	if err != nil {
		t.Fatalf("work sub category repository: %v", err)
	}

	rows := []interface{}{
		&models.Department{ID: 1, DepartmentFlag: 100, Name: "Engineering", Status: models.EntityActive},
		&models.User{ID: 1, DepartmentFlag: 100, DepartmentID: 1, Name: "Taro Sato", Email: "taro@example.com", Role: models.RoleManager},
		&models.Customer{ID: 1, DepartmentFlag: 100, CustomerCode: "CUST001", Name: "Acme", Status: models.EntityActive},
		&models.Customer{ID: 2, DepartmentFlag: 100, CustomerCode: "CUST002", Name: "Globex", Status: models.EntityActive},
		&models.WorkCategory{ID: 1, DepartmentFlag: 100, CategoryCode: "CAT001", Name: "Development", Status: models.EntityActive},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed reference data: %v", err)
		}
	}

	workLogService := service.NewWorkLogService(workLogRepo, userRepo, departmentRepo,
		customerRepo, projectRepo, categoryRepo, subCategoryRepo)
	referenceService := service.NewReferenceService(userRepo, departmentRepo,
		customerRepo, projectRepo, categoryRepo, subCategoryRepo)

	h := NewHandler(workLogService, referenceService)
	return h.Router(), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const sampleLogJSON = `{
	"user_id": 1,
	"department_id": 1,
	"customer_id": 1,
	"work_date": "2023-04-01",
	"start_time": "09:00:00",
	"end_time": "14:00:00",
	"work_details": "API implementation",
	"work_status": "completed"
}`

func TestCreateWorkLog(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var created models.WorkLog
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("id = %d, want 1", created.ID)
	}
	if created.WorkDate != "2023-04-01" {
		t.Errorf("work date = %q", created.WorkDate)
	}
}

func TestCreateWorkLogRejectsInvalid(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/work-logs", `{"user_id": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetWorkLog(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)

	rec := doRequest(t, router, http.MethodGet, "/api/work-logs/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var detail models.WorkLogDetail
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if detail.Customer == nil || detail.Customer.Name != "Acme" {
		t.Errorf("customer = %+v, want Acme", detail.Customer)
	}
	if detail.User == nil || detail.User.Name != "Taro Sato" {
		t.Errorf("user = %+v, want Taro Sato", detail.User)
	}
	if detail.Project != nil {
		t.Errorf("project = %+v, want nil", detail.Project)
	}
}

func TestGetWorkLogNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/work-logs/99", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListWorkLogsFiltered(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)
	doRequest(t, router, http.MethodPost, "/api/work-logs",
		strings.Replace(sampleLogJSON, `"customer_id": 1`, `"customer_id": 2`, 1))

	rec := doRequest(t, router, http.MethodGet, "/api/work-logs?customer_id=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		WorkLogs []models.WorkLogDetail `json:"work_logs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.WorkLogs) != 1 {
		t.Fatalf("len = %d, want 1", len(resp.WorkLogs))
	}
	if resp.WorkLogs[0].Customer == nil || resp.WorkLogs[0].Customer.Name != "Globex" {
		t.Errorf("customer = %+v, want Globex", resp.WorkLogs[0].Customer)
	}
}

func TestUpdateWorkLog(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)

	rec := doRequest(t, router, http.MethodPut, "/api/work-logs/1", `{"memo": "follow up tomorrow"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var updated models.WorkLog
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Memo == nil || *updated.Memo != "follow up tomorrow" {
		t.Errorf("memo = %v", updated.Memo)
	}
	if updated.WorkDetails != "API implementation" {
		t.Errorf("work details changed: %q", updated.WorkDetails)
	}
}

func TestUpdateWorkLogNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/work-logs/99", `{"memo": "x"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteWorkLog(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)

	rec := doRequest(t, router, http.MethodDelete, "/api/work-logs/1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, "/api/work-logs/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestAggregate(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)
	doRequest(t, router, http.MethodPost, "/api/work-logs",
		strings.Replace(sampleLogJSON, `"end_time": "14:00:00"`, `"end_time": "10:00:00"`, 1))

	rec := doRequest(t, router, http.MethodGet, "/api/aggregation?dimension=customer", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Dimension  string  `json:"dimension"`
		TotalHours float64 `json:"total_hours"`
		Groups     []struct {
			Name       string  `json:"name"`
			Hours      float64 `json:"hours"`
			Count      int     `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"groups"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Dimension != "customer" {
		t.Errorf("dimension = %q", resp.Dimension)
	}
	if resp.TotalHours != 6 {
		t.Errorf("total = %v, want 6", resp.TotalHours)
	}
	if len(resp.Groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(resp.Groups))
	}
	if resp.Groups[0].Name != "Acme" || resp.Groups[0].Percentage != 100.0 {
		t.Errorf("groups[0] = %+v, want Acme at 100%%", resp.Groups[0])
	}
}

func TestExportAggregationCSV(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)

	rec := doRequest(t, router, http.MethodGet, "/api/aggregation/export?dimension=customer", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "aggregation-customer.csv") {
		t.Errorf("content disposition = %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, utf8BOM) {
		t.Error("CSV body missing UTF-8 BOM")
	}
	if !strings.Contains(body, "name,hours,count,percentage") {
		t.Errorf("CSV body missing header: %q", body)
	}
	if !strings.Contains(body, `"Acme",5,1,"100.0%"`) {
		t.Errorf("CSV body missing Acme row: %q", body)
	}
}

func TestExportWorkLogsCSV(t *testing.T) {
	router, _ := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/work-logs", sampleLogJSON)

	rec := doRequest(t, router, http.MethodGet, "/api/work-logs/export", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), utf8BOM) {
		t.Error("CSV body missing UTF-8 BOM")
	}
	if !strings.Contains(rec.Body.String(), "API implementation") {
		t.Errorf("CSV body missing entry: %q", rec.Body.String())
	}
}

func TestListCustomers(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/customers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Customers []models.Customer `json:"customers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Customers) != 2 {
		t.Errorf("customers = %d, want 2", len(resp.Customers))
	}
}

func TestListWorkCategoriesRequiresFlag(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/work-categories", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/work-categories?department_flag=100", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
