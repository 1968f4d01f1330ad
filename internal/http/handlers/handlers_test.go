package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpserver "github.com/stackmart/marketplace-backend/internal/http"
	"github.com/stackmart/marketplace-backend/internal/http/handlers"
	"github.com/stackmart/marketplace-backend/internal/repos"
	"github.com/stackmart/marketplace-backend/internal/repos/testutil"
	"github.com/stackmart/marketplace-backend/internal/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	handlers.RegisterValidations()

	db := testutil.DB(t)
	log := testutil.Logger(t)

	customerRepo := repos.NewCustomerRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	orderRepo := repos.NewOrderRepo(db, log)

	customerService := services.NewCustomerService(db, log, customerRepo)
	productService := services.NewProductService(db, log, productRepo)
	orderService := services.NewOrderService(db, log, orderRepo, customerRepo, productRepo)

	router := httpserver.NewRouter(httpserver.RouterConfig{
		ServiceName:     "marketplace-backend-test",
		CustomerHandler: handlers.NewCustomerHandler(log, customerService),
		ProductHandler:  handlers.NewProductHandler(log, productService),
		OrderHandler:    handlers.NewOrderHandler(log, orderService),
	})
	return router, db
}

func do(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
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
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/healthcheck", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("healthcheck: code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestCreateCustomerReturns201(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodPost, "/api/v1/customers/create",
		`{"firstName":"John","lastName":"Doe","email":"john@x.com","age":25}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"email":"john@x.com"`) {
		t.Fatalf("body missing created entity: %q", w.Body.String())
	}
}

func TestCreateCustomerValidationFailureIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodPost, "/api/v1/customers/create",
		`{"firstName":"John","lastName":"Doe","email":"not-an-email","age":25}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), handlers.ErrorPrefix) {
		t.Fatalf("error body missing prefix: %q", w.Body.String())
	}
}

func TestCreateCustomerConflictIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	body := `{"firstName":"John","lastName":"Doe","email":"john@x.com","age":25}`
	if w := do(t, router, http.MethodPost, "/api/v1/customers/create", body); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", w.Code)
	}
	w := do(t, router, http.MethodPost, "/api/v1/customers/create", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("conflict mapped to %d, want 400", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), handlers.ErrorPrefix) {
		t.Fatalf("error body missing prefix: %q", w.Body.String())
	}
}

func TestGetMissingCustomerIs404(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/api/v1/customers/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Body.String(), handlers.ErrorPrefix) {
		t.Fatalf("error body missing prefix: %q", w.Body.String())
	}
}

func TestNonNumericPathIDIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/api/v1/customers/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestCreateProductNonPositivePriceIs400(t *testing.T) {
	router, _ := newTestRouter(t)
	w := do(t, router, http.MethodPost, "/api/v1/products/create",
		`{"productName":"A","price":0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestOrderFlow(t *testing.T) {
	router, db := newTestRouter(t)
	ctx := context.Background()

	customer := testutil.SeedCustomer(t, ctx, db, "john@x.com")
	a := testutil.SeedProduct(t, ctx, db, "A", "10")
	b := testutil.SeedProduct(t, ctx, db, "B", "20")

	w := do(t, router, http.MethodPost, "/api/v1/orders/createOrder/1",
		`{"productIds":[`+itoa(a.ID)+`,`+itoa(b.ID)+`]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("createOrder: code=%d body=%q", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalAmount":"30"`) {
		t.Fatalf("createOrder body missing total: %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"customerId":`+itoa(customer.ID)) {
		t.Fatalf("createOrder body missing customer: %q", w.Body.String())
	}

	// updating with an already-present and an unknown product changes nothing
	w = do(t, router, http.MethodPut, "/api/v1/orders/updateOrder/1",
		`{"productIds":[`+itoa(a.ID)+`,999]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("updateOrder: code=%d body=%q", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalAmount":"30"`) {
		t.Fatalf("updateOrder body total drifted: %q", w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/api/v1/orders/customer/99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("orders for unknown customer: code=%d", w.Code)
	}

	w = do(t, router, http.MethodDelete, "/api/v1/orders/delete/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete unknown order: code=%d", w.Code)
	}

	w = do(t, router, http.MethodDelete, "/api/v1/orders/delete/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete order: code=%d body=%q", w.Code, w.Body.String())
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
