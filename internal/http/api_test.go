package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mylibrary-user/internal/domain"
	"mylibrary-user/internal/hal"
	"mylibrary-user/internal/repository/sqlite"
	"mylibrary-user/internal/service"
)

const rishiBody = `{"userName":"Rishi Kapoor","idProof":"DLIND39384948393939","idType":"DL","mobile":9876543210}`

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newRouter(t *testing.T, users service.UserService, health Pinger) *gin.Engine {
	t.Helper()
	router := gin.New()
	NewHandler(users, health, quietLogger(), Options{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		CORSOrigins:     []string{"*"},
	}).RegisterRoutes(router)
	return router
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return newRouter(t, service.NewUserService(repo), repo)
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type userJSON struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
	IDProof  string `json:"idProof"`
	IDType   string `json:"idType"`
	Mobile   int64  `json:"mobile"`
	Links    map[string]struct {
		Href string `json:"href"`
	} `json:"_links"`
}

type pageJSON struct {
	Embedded struct {
		Users []userJSON `json:"users"`
	} `json:"_embedded"`
	Links map[string]struct {
		Href string `json:"href"`
	} `json:"_links"`
	Page hal.PageMetadata `json:"page"`
}

func decodeProblem(t *testing.T, w *httptest.ResponseRecorder) ProblemDetail {
	t.Helper()
	assert.Equal(t, ProblemMediaType, w.Header().Get("Content-Type"))
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return problem
}

func createRishi(t *testing.T, router http.Handler) userJSON {
	t.Helper()
	w := do(router, http.MethodPost, usersPath, rishiBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var user userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	return user
}

func TestGetUserByID(t *testing.T) {
	router := newTestServer(t)
	created := createRishi(t, router)

	w := do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, hal.MediaType, w.Header().Get("Content-Type"))

	var user userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, created.UserName, user.UserName)
	assert.Equal(t, "http://example.com/mylibrary/users/1", user.Links["self"].Href)
}

func TestGetUserByID_Idempotent(t *testing.T) {
	router := newTestServer(t)
	createRishi(t, router)

	first := do(router, http.MethodGet, usersPath+"/1", "")
	second := do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestGetUserByID_NotFound(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, usersPath+"/25534321", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	problem := decodeProblem(t, w)
	assert.Equal(t, "Resource not found", problem.Title)
	assert.Equal(t, "Requested resource cannot be found", problem.Detail)
	assert.Equal(t, "/mylibrary/users/25534321", problem.Instance)
	assert.Equal(t, http.StatusNotFound, problem.Status)
}

func TestGetUserByID_TypeMismatch(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, usersPath+"/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	problem := decodeProblem(t, w)
	assert.Equal(t, "Field type mismatch", problem.Title)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "Wrong field value format", problem.Errors[0].Title)
	assert.Contains(t, problem.Errors[0].Detail, "'abc'")
	assert.Contains(t, problem.Errors[0].Detail, "'int64'")
}

func TestGetUsers_Empty(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, usersPath, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, hal.MediaType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"users":[]`)

	var page pageJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(0), page.Page.TotalElements)
	assert.Equal(t, 0, page.Page.TotalPages)
	assert.Empty(t, page.Embedded.Users)
	assert.Equal(t,
		"http://example.com/mylibrary/users?page=0&size=20&sort=userName,asc",
		page.Links["self"].Href)
}

func TestGetUsers_SelfLinkKeepsPaging(t *testing.T) {
	router := newTestServer(t)
	createRishi(t, router)

	w := do(router, http.MethodGet, usersPath+"?page=0&size=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page pageJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Page.TotalElements)
	assert.Equal(t, 1, page.Page.TotalPages)
	require.Len(t, page.Embedded.Users, 1)
	assert.Empty(t, page.Embedded.Users[0].Links)
	assert.Contains(t, page.Links["self"].Href, "page=0&size=10")
	assert.NotContains(t, page.Links, "next")
}

func TestGetUsers_NavigationLinks(t *testing.T) {
	router := newTestServer(t)
	for i := 0; i < 5; i++ {
		createRishi(t, router)
	}

	w := do(router, http.MethodGet, usersPath+"?page=1&size=2&sort=userId,desc", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page pageJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Page.TotalPages)
	assert.Equal(t, 1, page.Page.Number)
	require.Len(t, page.Embedded.Users, 2)
	assert.Equal(t, int64(3), page.Embedded.Users[0].UserID)
	assert.Equal(t, int64(2), page.Embedded.Users[1].UserID)

	base := "http://example.com/mylibrary/users?page="
	assert.Equal(t, base+"0&size=2&sort=userId,desc", page.Links["first"].Href)
	assert.Equal(t, base+"0&size=2&sort=userId,desc", page.Links["prev"].Href)
	assert.Equal(t, base+"1&size=2&sort=userId,desc", page.Links["self"].Href)
	assert.Equal(t, base+"2&size=2&sort=userId,desc", page.Links["next"].Href)
	assert.Equal(t, base+"2&size=2&sort=userId,desc", page.Links["last"].Href)
}

func TestGetUsers_HugePageIsEmpty(t *testing.T) {
	router := newTestServer(t)
	createRishi(t, router)

	w := do(router, http.MethodGet, usersPath+"?page=9223372036854775807&size=20", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var page pageJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Empty(t, page.Embedded.Users)
	assert.Equal(t, int64(1), page.Page.TotalElements)
	assert.Positive(t, page.Page.Number)
	assert.NotContains(t, page.Links, "next")
	assert.NotContains(t, page.Links["self"].Href, "page=-")
	assert.NotContains(t, page.Links["prev"].Href, "page=-")
}

func TestGetUsers_InvalidParameters(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, usersPath+"?size=ten", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Field type mismatch", decodeProblem(t, w).Title)

	w = do(router, http.MethodGet, usersPath+"?sort=password", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Validation failed", problem.Title)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "sort refers to unknown property 'password'", problem.Errors[0].Detail)
}

func TestGetUsers_ForwardedHost(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, usersPath, nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "library.example.org, proxy.internal")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page pageJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.True(t, strings.HasPrefix(page.Links["self"].Href, "https://library.example.org/mylibrary/users?"))
}

func TestCreateUser(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath, rishiBody)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, hal.MediaType, w.Header().Get("Content-Type"))
	assert.Equal(t, "http://example.com/mylibrary/users/1", w.Header().Get("Location"))

	var created userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Rishi Kapoor", created.UserName)
	assert.Equal(t, "DLIND39384948393939", created.IDProof)
	assert.Equal(t, "DL", created.IDType)
	assert.Equal(t, int64(9876543210), created.Mobile)
	assert.Equal(t, "http://example.com/mylibrary/users/1", created.Links["self"].Href)

	w = do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)
}

func TestCreateUser_QuotedMobile(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath,
		`{"userName":"Rishi Kapoor","idProof":"DLIND39384948393939","idType":"DL","mobile":"9876543210","extra":true}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(9876543210), created.Mobile)
}

func TestCreateUser_KeepsFieldsAsSent(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath,
		`{"userName":" Rishi Kapoor ","idProof":"DLIND39384948393939 ","idType":"DL","mobile":9876543210}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched userJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, " Rishi Kapoor ", fetched.UserName)
	assert.Equal(t, "DLIND39384948393939 ", fetched.IDProof)
}

func TestCreateUser_MissingUserName(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath,
		`{"idProof":"DLIND39384948393939","idType":"DL","mobile":9876543210}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	problem := decodeProblem(t, w)
	assert.Equal(t, "Validation failed", problem.Title)
	assert.Empty(t, problem.Detail)
	assert.Equal(t, usersPath, problem.Instance)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "Invalid Parameter", problem.Errors[0].Title)
	assert.Equal(t, "userName must not be null", problem.Errors[0].Detail)
}

func TestCreateUser_AggregatesErrors(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath, `{"userName":"  ","mobile":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	problem := decodeProblem(t, w)
	details := make([]string, len(problem.Errors))
	for i, e := range problem.Errors {
		details[i] = e.Detail
	}
	assert.Equal(t, []string{
		"userName must not be blank",
		"idProof must not be null",
		"idType must not be null",
		"mobile must be greater than 0",
	}, details)
}

func TestCreateUser_DuplicateID(t *testing.T) {
	router := newTestServer(t)
	body := `{"userId":7,"userName":"Rishi Kapoor","idProof":"DLIND39384948393939","idType":"DL","mobile":9876543210}`

	w := do(router, http.MethodPost, usersPath, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "http://example.com/mylibrary/users/7", w.Header().Get("Location"))

	w = do(router, http.MethodPost, usersPath, body)
	require.Equal(t, http.StatusConflict, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Constraint Violation", problem.Title)
	assert.Equal(t, "User with id 7 already exists", problem.Detail)
}

func TestCreateUser_MalformedBody(t *testing.T) {
	router := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "truncated json", body: `{"userName":`},
		{name: "mobile not a number", body: `{"userName":"a","idProof":"b","idType":"c","mobile":"call me"}`},
		{name: "wrong shape", body: `["not","an","object"]`},
		{name: "trailing content", body: rishiBody + ` garbage`},
		{name: "second object", body: rishiBody + rishiBody},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(router, http.MethodPost, usersPath, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			problem := decodeProblem(t, w)
			assert.Equal(t, "Message cannot be converted", problem.Title)
			assert.True(t, strings.HasPrefix(problem.Detail, "Invalid request body: "))
		})
	}
}

func TestCreateUser_TrailingWhitespace(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath, rishiBody+"\n\t ")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateUser_EmptyBody(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodPost, usersPath, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Invalid request body: Required request body is missing", problem.Detail)
}

type stubUsers struct {
	err   error
	panic bool
}

func (s stubUsers) GetUserByID(context.Context, int64) (*domain.User, error) {
	if s.panic {
		panic("boom")
	}
	return nil, s.err
}

func (s stubUsers) GetUsers(context.Context, domain.PageRequest) (domain.Page[domain.User], error) {
	return domain.Page[domain.User]{}, s.err
}

func (s stubUsers) CreateUser(context.Context, domain.UserInput) (*domain.User, error) {
	return nil, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestInternalError_HidesCause(t *testing.T) {
	router := newRouter(t, stubUsers{err: errors.New("disk I/O error")}, stubPinger{})

	w := do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Internal Error", problem.Title)
	assert.Equal(t, "An unexpected error has occurred", problem.Detail)
	assert.NotContains(t, w.Body.String(), "disk")
}

func TestPanicRecovered(t *testing.T) {
	router := newRouter(t, stubUsers{panic: true}, stubPinger{})

	w := do(router, http.MethodGet, usersPath+"/1", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Internal Error", problem.Title)
	assert.Equal(t, usersPath+"/1", problem.Instance)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, "/mylibrary/books", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	problem := decodeProblem(t, w)
	assert.Equal(t, "Resource not found", problem.Title)
	assert.Equal(t, "/mylibrary/books", problem.Instance)

	w = do(router, http.MethodDelete, usersPath+"/1", "")
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	problem = decodeProblem(t, w)
	assert.Equal(t, "Method not allowed", problem.Title)
	assert.Equal(t, "Request method 'DELETE' is not supported", problem.Detail)
}

func TestRequestID(t *testing.T) {
	router := newTestServer(t)

	w := do(router, http.MethodGet, usersPath, "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, usersPath, nil)
	req.Header.Set(requestIDHeader, "req-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	router := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, usersPath, nil)
	req.Header.Set("Origin", "http://frontend.local")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	router := newTestServer(t)
	w := do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	router = newRouter(t, stubUsers{}, stubPinger{err: errors.New("connection refused")})
	w = do(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Service unavailable", decodeProblem(t, w).Title)
}
