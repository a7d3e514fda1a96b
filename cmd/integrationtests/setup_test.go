package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	natsserver "github.com/nats-io/nats-server/v2/server"

	"auction-marketplace/internal/bidding"
	"auction-marketplace/internal/catalog"
	"auction-marketplace/internal/clients"
	"auction-marketplace/internal/eventbus"
	"auction-marketplace/internal/ledger"
	"auction-marketplace/internal/server"
)

// StartTestNATS starts an embedded NATS server and returns its client URL.
func StartTestNATS(t *testing.T) string {
	t.Helper()
	opts := &natsserver.Options{Host: "127.0.0.1", Port: -1}
	srv, err := natsserver.NewServer(opts)
	if err != nil {
		t.Fatalf("starting embedded NATS: %v", err)
	}
	srv.Start()
	t.Cleanup(srv.Shutdown)
	if !srv.ReadyForConnections(5 * time.Second) {
		t.Fatal("embedded NATS not ready")
	}
	return srv.ClientURL()
}

// routerHolder lets an httptest server exist before the gin engine it will
// serve, which breaks the circular dependency between the two services'
// base URLs.
type routerHolder struct {
	mu     sync.RWMutex
	engine *gin.Engine
}

func (h *routerHolder) set(engine *gin.Engine) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine = engine
}

func (h *routerHolder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	engine := h.engine
	h.mu.RUnlock()
	engine.ServeHTTP(w, r)
}

// TestEnv wires a complete two-service deployment over embedded NATS.
type TestEnv struct {
	NATSURL string

	Bidding *gin.Engine
	Catalog *gin.Engine

	Ledger *ledger.MemoryLedger
	Repo   *catalog.MemoryRepository
}

// SetupTestEnv builds both services, points their HTTP clients at each
// other, and starts their event consumers.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	natsURL := StartTestNATS(t)

	biddingHolder := &routerHolder{}
	catalogHolder := &routerHolder{}
	biddingSrv := httptest.NewServer(biddingHolder)
	catalogSrv := httptest.NewServer(catalogHolder)
	t.Cleanup(biddingSrv.Close)
	t.Cleanup(catalogSrv.Close)

	biddingBus, err := eventbus.NewNATSBus(natsURL, 3)
	if err != nil {
		t.Fatalf("connecting bidding bus: %v", err)
	}
	t.Cleanup(func() { _ = biddingBus.Close() })

	catalogBus, err := eventbus.NewNATSBus(natsURL, 3)
	if err != nil {
		t.Fatalf("connecting catalog bus: %v", err)
	}
	t.Cleanup(func() { _ = catalogBus.Close() })

	led := ledger.NewMemoryLedger()
	admission := bidding.NewAdmissionService(led, clients.NewCatalogClient(catalogSrv.URL), biddingBus, time.Hour)
	biddingConsumer := bidding.NewConsumer(admission, biddingBus)
	if err := biddingConsumer.Start(); err != nil {
		t.Fatalf("starting bidding consumer: %v", err)
	}
	t.Cleanup(biddingConsumer.Stop)

	repo := catalog.NewMemoryRepository()
	catalogSvc := catalog.NewCatalogService(repo, clients.NewBiddingClient(biddingSrv.URL), catalogBus)
	catalogConsumer := catalog.NewConsumer(catalogSvc, catalogBus)
	if err := catalogConsumer.Start(); err != nil {
		t.Fatalf("starting catalog consumer: %v", err)
	}
	t.Cleanup(catalogConsumer.Stop)

	biddingRouter := server.SetupBiddingRouter(admission)
	catalogRouter := server.SetupCatalogRouter(catalogSvc)
	biddingHolder.set(biddingRouter)
	catalogHolder.set(catalogRouter)

	return &TestEnv{
		NATSURL: natsURL,
		Bidding: biddingRouter,
		Catalog: catalogRouter,
		Ledger:  led,
		Repo:    repo,
	}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// data extracts the data object from a response envelope.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return d
}
