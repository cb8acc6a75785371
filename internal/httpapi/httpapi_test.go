package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/internal/config"
	"github.com/openmusicarchive/catalogue/internal/supabase"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

const (
	personID = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	artistID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	workID   = "9e107d9d-3720-41f2-b2a1-0e02b2c3d479"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// upstreamLog counts and records requests reaching the fake database.
type upstreamLog struct {
	mu   sync.Mutex
	reqs []*http.Request
}

func (l *upstreamLog) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l.mu.Lock()
		l.reqs = append(l.reqs, r.Clone(r.Context()))
		l.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (l *upstreamLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reqs)
}

func (l *upstreamLog) find(method, path string) []*http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []*http.Request
	for _, r := range l.reqs {
		if r.Method == method && r.URL.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func newTestRouter(t *testing.T, upstream http.Handler) (*gin.Engine, *upstreamLog) {
	t.Helper()
	log := &upstreamLog{}
	srv := httptest.NewServer(log.wrap(upstream))
	t.Cleanup(srv.Close)

	client, err := supabase.New(supabase.Config{
		URL:        srv.URL,
		ServiceKey: "test-key",
		HTTPClient: srv.Client(),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           8080,
			Mode:           "test",
			AllowedOrigins: []string{"*"},
		},
		Supabase: config.SupabaseConfig{URL: srv.URL, ServiceKey: "test-key"},
	}

	st := store.New(client, logger.NewNop())
	return NewRouter(cfg, st, logger.NewNop()), log
}

func do(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func detail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestGetPersonFoundAndAbsent(t *testing.T) {
	exists := true
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if exists {
			w.Write([]byte(`[{"person_id":"` + personID + `","legal_name":"Carl Nielsen"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))

	rec := do(router, http.MethodGet, "/persons/"+personID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var person struct {
		ID        string `json:"id"`
		LegalName string `json:"legal_name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &person))
	assert.Equal(t, personID, person.ID)
	assert.Equal(t, "Carl Nielsen", person.LegalName)

	exists = false
	rec = do(router, http.MethodGet, "/persons/"+personID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Person not found", detail(t, rec))
}

func TestGetPersonBadUUID(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodGet, "/persons/not-a-uuid", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, detail(t, rec), "Invalid UUID")
	assert.Zero(t, log.count())
}

func TestCreatePerson(t *testing.T) {
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"person_id":"` + personID + `","legal_name":"Carl Nielsen"}]`))
	}))

	rec := do(router, http.MethodPost, "/persons", `{"legal_name":"Carl Nielsen"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = do(router, http.MethodPost, "/persons", `{"legal_name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePersonValidation(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodPost, "/persons",
		`{"legal_name":"X","birth_date":"1931-10-03","death_date":"1865-06-09"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, detail(t, rec), "Start date should be before or equal to end date.")
	assert.Zero(t, log.count())
}

func TestBulkCreatePersons(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"person_id":"` + personID + `","legal_name":"Carl Nielsen"}]`))
	}))

	rec := do(router, http.MethodPost, "/persons/bulk",
		`[{"legal_name":"Carl Nielsen"},{"legal_name":"Anne Marie Brodersen"}]`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created, 2)
	assert.Len(t, log.find(http.MethodPost, "/rest/v1/persons"), 2)
}

func TestBulkCreateStopsOnFirstFailure(t *testing.T) {
	var inserts int
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inserts++
		if inserts == 2 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"duplicate person"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"person_id":"` + personID + `","legal_name":"X"}]`))
	}))

	rec := do(router, http.MethodPost, "/persons/bulk",
		`[{"legal_name":"A"},{"legal_name":"B"},{"legal_name":"C"}]`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "duplicate person", detail(t, rec))
	// The loop stops at the failure; the third insert never runs and the
	// first create stays.
	assert.Equal(t, 2, inserts)
}

func TestCreateGroupArtistWithoutMembers(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodPost, "/artists",
		`{"artist_type":"group","display_name":"X","members":[]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Missing members for GROUP type artist", detail(t, rec))
	assert.Zero(t, log.count())
}

func TestSearchWorksNormalizesQuery(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	rec := do(router, http.MethodGet, "/works?query="+url.QueryEscape("nielsen saul"), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	searches := log.find(http.MethodGet, "/rest/v1/works")
	require.Len(t, searches, 1)
	assert.Equal(t, "fts.nielsen+saul", searches[0].URL.Query().Get("search_text"))
}

func TestSearchQueryBounds(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	for _, target := range []string{
		"/works?query=a",
		"/persons?query=" + url.QueryEscape(strings.Repeat("x", 51)),
		"/artists?query=",
	} {
		rec := do(router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
		assert.Equal(t, "Query must be between 2 and 50 characters", detail(t, rec))
	}
	assert.Zero(t, log.count())
}

func TestCreateWorkRejectsUnknownVersionEnums(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodPost, "/works",
		`{"title":"X","versions":[{"title":"Y","primary_artist_id":"`+artistID+`","version_type":"bootleg"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `Invalid version type "bootleg"`, detail(t, rec))

	rec = do(router, http.MethodPost, "/works",
		`{"title":"X","versions":[{"title":"Y","primary_artist_id":"`+artistID+`","completeness_level":"full"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `Invalid completeness level "full"`, detail(t, rec))

	assert.Zero(t, log.count())
}

func TestSearchQueryCountsRunesNotBytes(t *testing.T) {
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))

	// 26 two-byte runes: 52 bytes but well within the 50-character bound.
	query := strings.Repeat("ø", 26)
	rec := do(router, http.MethodGet, "/persons?query="+url.QueryEscape(query), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/persons?query="+url.QueryEscape(strings.Repeat("ø", 51)), "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Query must be between 2 and 50 characters", detail(t, rec))
}

func TestCreateWorkChildFailureRollsBack(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/works":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`[{"work_id":"` + workID + `","title":"X"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/versions":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"versions insert failed"}`))
		case r.Method == http.MethodDelete:
			w.Write([]byte(`[]`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	rec := do(router, http.MethodPost, "/works",
		`{"title":"X","versions":[{"title":"Original","primary_artist_id":"`+artistID+`"}]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "versions insert failed", detail(t, rec))

	deletes := log.find(http.MethodDelete, "/rest/v1/works")
	require.Len(t, deletes, 1)
	assert.Equal(t, "eq."+workID, deletes[0].URL.Query().Get("work_id"))
}

func TestUnifiedSearchBounds(t *testing.T) {
	router, log := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodGet, "/search?query=a", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Query must be between 2 and 50 characters", detail(t, rec))

	rec = do(router, http.MethodGet, "/search?query=nielsen&limit=0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Limit must be between 1 and 100", detail(t, rec))

	rec = do(router, http.MethodGet, "/search?query=nielsen&limit=101", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(router, http.MethodGet, "/search?query=nielsen&entity_types=work,starship", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, detail(t, rec), "Invalid entity type")

	assert.Zero(t, log.count())
}

func TestUnifiedSearch(t *testing.T) {
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/rpc/unified_search", r.URL.Path)
		w.Write([]byte(`[{"entity_type":"work","entity_id":"` + workID + `","display_text":"Symphony No. 4","rank":0.62}]`))
	}))

	rec := do(router, http.MethodGet, "/search?query=nielsen+symphony&entity_types=work&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var results []struct {
		EntityType  string  `json:"entity_type"`
		DisplayText string  `json:"display_text"`
		Rank        float64 `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "work", results[0].EntityType)
	assert.Equal(t, "Symphony No. 4", results[0].DisplayText)
}

func TestGetWorkLinks(t *testing.T) {
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/external_links", r.URL.Path)
		assert.Equal(t, "eq.work", r.URL.Query().Get("entity_type"))
		w.Write([]byte(`[{"link_id":"` + personID + `","label":"CNW","url":"https://example.org/cnw/42","source_verified":true}]`))
	}))

	rec := do(router, http.MethodGet, "/works/"+workID+"/links", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var links []struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	require.Len(t, links, 1)
	assert.Equal(t, "CNW", links[0].Label)
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no upstream call expected")
	}))

	rec := do(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
