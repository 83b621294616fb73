package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/nirajdighe005/alj-java-challenge/internal/auth"
	"github.com/nirajdighe005/alj-java-challenge/internal/employee"
	"github.com/nirajdighe005/alj-java-challenge/internal/middleware"
	"github.com/nirajdighe005/alj-java-challenge/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// memRepository is an in-memory stand-in for the gorm repository, enough to
// run the full request chain without a database.
type memRepository struct {
	mu     sync.Mutex
	rows   map[int64]employee.Employee
	nextID int64
}

func newMemRepository(nextID int64) *memRepository {
	return &memRepository{rows: map[int64]employee.Employee{}, nextID: nextID}
}

func (r *memRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]employee.Employee, 0, len(r.rows))
	for _, e := range r.rows {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *memRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memRepository) Create(ctx context.Context, empl *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	empl.ID = r.nextID
	r.nextID++
	r.rows[empl.ID] = *empl
	return nil
}

func (r *memRepository) Update(ctx context.Context, empl *employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[empl.ID] = *empl
	return nil
}

func (r *memRepository) DeleteByID(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func newSecuredRouter(t *testing.T, repo employee.Repository) *gin.Engine {
	t.Helper()

	store, err := auth.NewStore(
		auth.Account{Username: "user", Password: "password", Role: auth.RoleUser},
		auth.Account{Username: "admin", Password: "admin", Role: auth.RoleAdmin},
	)
	assert.NoError(t, err)

	logger := zap.NewNop()
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ContextLogger(logger))
	r.Use(middleware.BasicAuthorizer(store, auth.DefaultRules(), logger))

	api := r.Group("/api/v1")
	employee.RegisterRoutes(api, employee.NewHandler(employee.NewService(repo, logger), logger))
	return r
}

func do(r *gin.Engine, method, path, body, username, password string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if username != "" {
		req.SetBasicAuth(username, password)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeAPI_EndToEnd(t *testing.T) {
	repo := newMemRepository(11)
	r := newSecuredRouter(t, repo)

	// create as admin
	w := do(r, http.MethodPost, "/api/v1/employees", `{"name":"Alan","salary":5000,"department":"SALES"}`, "admin", "admin")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Employee with id 11 Successfully created.")

	// read it back as user
	w = do(r, http.MethodGet, "/api/v1/employees/11", "", "user", "password")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":11,"name":"Alan","salary":5000,"department":"SALES"}`, w.Body.String())

	// listing holds exactly one view per stored row
	w = do(r, http.MethodGet, "/api/v1/employees", "", "user", "password")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"employees":[{"id":11,"name":"Alan","salary":5000,"department":"SALES"}]}`, w.Body.String())

	// delete as admin
	w = do(r, http.MethodDelete, "/api/v1/employees/11", "", "admin", "admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Employee with id 11 Successfully deleted.")

	// gone now
	w = do(r, http.MethodGet, "/api/v1/employees/11", "", "user", "password")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Employee record unavailable for given id.")

	// deleting again fails the same way
	w = do(r, http.MethodDelete, "/api/v1/employees/11", "", "admin", "admin")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "unavailable for given id")
}

func TestEmployeeAPI_Authorization(t *testing.T) {
	repo := newMemRepository(1)
	r := newSecuredRouter(t, repo)

	t.Run("user role cannot create", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/employees", `{"name":"Alan","salary":5000,"department":"SALES"}`, "user", "password")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), response.ExceptionPrefix+"Access Denied")
	})

	t.Run("admin role can create", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/employees", `{"name":"Alan","salary":5000,"department":"SALES"}`, "admin", "admin")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing credentials are denied", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees", "", "", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wrong password is denied", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees", "", "user", "nope")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("user role can read", func(t *testing.T) {
		w := do(r, http.MethodGet, "/api/v1/employees", "", "user", "password")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation still applies for admin", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/employees", `{"name":"","salary":-1,"department":""}`, "admin", "admin")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), response.InvalidFieldsPrefix)
	})

	t.Run("whitespace strings and absent salary never reach storage", func(t *testing.T) {
		w := do(r, http.MethodPost, "/api/v1/employees", `{"name":"   ","department":" "}`, "admin", "admin")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), response.InvalidFieldsPrefix)
		assert.Contains(t, w.Body.String(), "name")
		assert.Contains(t, w.Body.String(), "salary")
		assert.Contains(t, w.Body.String(), "department")

		listing := do(r, http.MethodGet, "/api/v1/employees", "", "user", "password")
		assert.Equal(t, http.StatusOK, listing.Code)
		assert.NotContains(t, listing.Body.String(), `"name":"   "`)
	})
}
