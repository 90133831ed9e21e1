package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// scenario holds per-scenario state for the step definitions.
type scenario struct {
	t        *testing.T
	engine   *gin.Engine
	recorder *httptest.ResponseRecorder
}

func (s *scenario) theBackendIsRunning() error {
	s.engine = newTestEngine(s.t)
	return nil
}

func (s *scenario) send(method, path string, body []byte) error {
	if s.engine == nil {
		return fmt.Errorf("backend not started")
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.recorder = httptest.NewRecorder()
	s.engine.ServeHTTP(s.recorder, req)

	return nil
}

func (s *scenario) iGET(path string) error {
	return s.send(http.MethodGet, path, nil)
}

func (s *scenario) iPOSTWith(path string, body *godog.DocString) error {
	return s.send(http.MethodPost, path, []byte(body.Content))
}

func (s *scenario) iAmSignedInAs(username string) error {
	payload := fmt.Sprintf(`{"username": %q, "password": "secret"}`, username)

	if err := s.send(http.MethodPost, "/api/v1/account/register", []byte(payload)); err != nil {
		return err
	}

	if s.recorder.Code != http.StatusCreated {
		return fmt.Errorf("register %s: status %d: %s", username, s.recorder.Code, s.recorder.Body.String())
	}

	return nil
}

func (s *scenario) theResponseStatusShouldBe(code int) error {
	if s.recorder == nil {
		return fmt.Errorf("no response received")
	}

	if s.recorder.Code != code {
		return fmt.Errorf("expected status %d, got %d. Body: %s", code, s.recorder.Code, s.recorder.Body.String())
	}

	return nil
}

func (s *scenario) theResponseShouldContain(text string) error {
	if body := s.recorder.Body.String(); !strings.Contains(body, text) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, body)
	}

	return nil
}

func (s *scenario) theJSONFieldShouldBe(path, want string) error {
	got := gjson.GetBytes(s.recorder.Body.Bytes(), path)
	if !got.Exists() {
		return fmt.Errorf("field %q missing.\nBody: %s", path, s.recorder.Body.String())
	}

	if got.String() != want {
		return fmt.Errorf("field %q: expected %q, got %q", path, want, got.String())
	}

	return nil
}

func initializeScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		s := &scenario{t: t}

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			s.engine = nil
			s.recorder = nil
			return ctx, nil
		})

		ctx.Step(`^the backend is running with the bundled catalog$`, s.theBackendIsRunning)
		ctx.Step(`^I am signed in as "([^"]*)"$`, s.iAmSignedInAs)
		ctx.Step(`^I GET "([^"]*)"$`, s.iGET)
		ctx.Step(`^I POST "([^"]*)" with:$`, s.iPOSTWith)
		ctx.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
		ctx.Step(`^the response should contain "([^"]*)"$`, s.theResponseShouldContain)
		ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, s.theJSONFieldShouldBe)
	}
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
