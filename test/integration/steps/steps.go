// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/color3/backend/config"
	"github.com/color3/backend/internal/domain/entity"
	"github.com/color3/backend/internal/infra/dependency"
	"github.com/color3/backend/internal/integration/persistence"
	"github.com/color3/backend/internal/integration/persistence/model"
	"github.com/color3/backend/test/integration/mock"
)

type testContext struct {
	uri                 string
	headers             map[string]string
	client              *http.Client
	response            *response
	db                  *mock.Db
	timeMock            *mock.Time
	currentSubmissionID uuid.UUID
}

type response struct {
	status  int
	headers http.Header
	body    any
}

var (
	serverInit sync.Once
	server     *httptest.Server
	injector   *dependency.Injector
	testDB     *mock.Db
	testClock  = mock.NewTime()
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: testClock,
		db: mock.NewDb("color3", map[string]any{
			"submissions":         &model.SubmissionModel{},
			"aggregate_snapshots": &model.AggregateSnapshotModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Data setup steps
	ctx.Given(`^(\d+) submissions? exists? with:$`, test.submissionsExistWith)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.currentSubmissionID = uuid.Nil
	t.timeMock.Reset()

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			return err
		}
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	if injector != nil {
		injector.RateLimiter.Reset()
	}
	return nil
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Snapshot.WorkerEnabled = false
		cfg.Redis.Enabled = true
		cfg.RateLimit.MaxSubmissions = 1000
		cfg.CORS.FrontendURL = "http://localhost:3000"

		injector = dependency.NewInjectorWithClock(cfg, testDB.DbConn, mock.NewRedis(), testDB.HealthCheck, testClock)
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})
	t.uri = server.URL
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

// submissionsExistWith stores quantity identical submissions built from a
// | unit | index | hex | table. Units are month (0-11), day_of_month (1-31) and day_of_week (0-6).
func (t *testContext) submissionsExistWith(quantity int, table *godog.Table) error {
	var (
		months      [entity.MonthsPerYear]*entity.ColorValue
		daysOfMonth [entity.DaysPerMonth]*entity.ColorValue
		daysOfWeek  [entity.DaysPerWeek]*entity.ColorValue
	)

	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: expected 3 cells", i)
		}

		unit := row.Cells[0].Value
		index, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return fmt.Errorf("row %d: invalid index: %w", i, err)
		}
		color, err := entity.NewColorValue(row.Cells[2].Value)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		switch {
		case unit == "month" && index >= 0 && index < entity.MonthsPerYear:
			months[index] = color
		case unit == "day_of_month" && index >= 1 && index <= entity.DaysPerMonth:
			daysOfMonth[index-1] = color
		case unit == "day_of_week" && index >= 0 && index < entity.DaysPerWeek:
			daysOfWeek[index] = color
		default:
			return fmt.Errorf("row %d: unknown slot %s[%d]", i, unit, index)
		}
	}

	repo := persistence.NewSubmissionRepository(t.db.DbConn)
	for i := 0; i < quantity; i++ {
		sub := entity.NewSubmission(months, daysOfMonth, daysOfWeek, t.timeMock.Now())
		if err := repo.Create(context.Background(), sub); err != nil {
			return err
		}
		t.currentSubmissionID = sub.ID
	}
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{submission_id}}", t.currentSubmissionID.String())
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the submission ID from write responses
	if success, _ := responseBody["success"].(bool); success {
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.currentSubmissionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if value := getFieldValue(body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	switch v := getFieldValue(body, field).(type) {
	case []any:
		if len(v) != quantity {
			return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(v))
		}
	case map[string]any:
		if len(v) != quantity {
			return fmt.Errorf("field '%s' expected %d entries, got %d", field, quantity, len(v))
		}
	default:
		return fmt.Errorf("field '%s' is not a list or object: %v", field, v)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.theDbShouldContainObjectsInWithTheValues(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if content != nil {
		if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
			return err
		}
	}

	tableModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(tableModel).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), t.replacePlaceholders(fmt.Sprintf("%v", value)))
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue walks a dot-separated path. Numeric segments index arrays or,
// failing that, look up object keys such as slot indices.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch v := field.(type) {
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(v) {
				return nil
			}
			field = v[i]
		case map[string]any:
			field = v[currentField]
		default:
			return nil
		}
	}

	return field
}
