package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"foodorders/internal/models"
	"foodorders/internal/reports"
	"foodorders/internal/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	m.Run()
}

// fakeStore records the last input it saw and replays canned results.
type fakeStore struct {
	name string
	err  error

	order            *models.Order
	restaurantReport *reports.RestaurantReport
	riderReport      *reports.RiderReport

	placed   *store.PlaceOrderInput
	paidID   int64
	paidWith string
	assigned *store.AssignDeliveryInput

	restaurantFilter *store.RestaurantReportFilter
	riderFilter      *store.RiderReportFilter
}

func (f *fakeStore) Name() string { return f.name }

func (f *fakeStore) PlaceOrder(_ context.Context, in store.PlaceOrderInput) (*models.Order, error) {
	f.placed = &in
	return f.order, f.err
}

func (f *fakeStore) Pay(_ context.Context, orderID int64, method string) (*models.Order, error) {
	f.paidID, f.paidWith = orderID, method
	return f.order, f.err
}

func (f *fakeStore) AssignDelivery(_ context.Context, in store.AssignDeliveryInput) (*models.Order, error) {
	f.assigned = &in
	return f.order, f.err
}

func (f *fakeStore) RestaurantReport(_ context.Context, filter store.RestaurantReportFilter) (*reports.RestaurantReport, error) {
	f.restaurantFilter = &filter
	return f.restaurantReport, f.err
}

func (f *fakeStore) RiderReport(_ context.Context, filter store.RiderReportFilter) (*reports.RiderReport, error) {
	f.riderFilter = &filter
	return f.riderReport, f.err
}

func testRouter(sql, mongo *fakeStore) *gin.Engine {
	stores := Stores{SQL: sql, Mongo: mongo}
	r := gin.New()
	r.POST("/student1/:mode/place_order", PlaceOrder(stores, false))
	r.POST("/student1/:mode/pay", Pay(stores, false))
	r.GET("/student1/:mode/report", RestaurantReport(stores, false))
	r.POST("/student2/:mode/assign_delivery", AssignDelivery(stores, false))
	r.GET("/student2/:mode/report", RiderReport(stores, false))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnknownModeIsBadRequest(t *testing.T) {
	r := testRouter(&fakeStore{name: "sql"}, &fakeStore{name: "mongo"})
	w := do(t, r, http.MethodPost, "/student1/redis/pay", `{"orderId":1,"paymentMethod":"cash"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown mode") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestErrorTaxonomyMapsToStatuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{store.BadRequestf("bad"), http.StatusBadRequest},
		{store.NotFoundf("missing"), http.StatusNotFound},
		{store.Conflictf("already paid"), http.StatusConflict},
		{context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		sql := &fakeStore{name: "sql", err: tc.err}
		r := testRouter(sql, &fakeStore{name: "mongo"})
		w := do(t, r, http.MethodPost, "/student1/sql/pay", `{"orderId":1,"paymentMethod":"cash"}`)
		if w.Code != tc.want {
			t.Fatalf("err %v: status = %d, want %d", tc.err, w.Code, tc.want)
		}
		if !strings.Contains(w.Body.String(), `"ok":false`) {
			t.Fatalf("err %v: body = %s", tc.err, w.Body.String())
		}
	}
}

func TestStackOnlyOnDebugServerErrors(t *testing.T) {
	stores := Stores{SQL: &fakeStore{name: "sql", err: context.DeadlineExceeded}}
	r := gin.New()
	r.POST("/student1/:mode/pay", Pay(stores, true))
	w := do(t, r, http.MethodPost, "/student1/sql/pay", `{"orderId":1,"paymentMethod":"cash"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "goroutine") {
		t.Fatalf("expected a stack trace, body = %s", w.Body.String())
	}

	stores.SQL = &fakeStore{name: "sql", err: store.Conflictf("already paid")}
	r = gin.New()
	r.POST("/student1/:mode/pay", Pay(stores, true))
	w = do(t, r, http.MethodPost, "/student1/sql/pay", `{"orderId":1,"paymentMethod":"cash"}`)
	if strings.Contains(w.Body.String(), "goroutine") {
		t.Fatalf("conflict must not carry a stack, body = %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"stack":null`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}
