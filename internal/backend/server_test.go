package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coursewatch/coursewatch/internal/querycourse"
)

// testServer builds a server over the test catalog and exposes its handler
// on an ephemeral port.
func testServer(t *testing.T, loaded bool) (*Server, *httptest.Server) {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(catalogJSON)); err != nil {
			t.Errorf("write catalog: %v", err)
		}
	}))
	t.Cleanup(upstream.Close)

	s, err := NewServer(Config{Semester: "1142", Upstream: upstream.URL, Seed: 1})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if loaded {
		if err := s.repo.Load(context.Background(), s.client, s.semester); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
	}

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func postQuery(t *testing.T, url string, query querycourse.QueryRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(query)
	if err != nil {
		t.Fatalf("marshal query: %v", err)
	}
	resp, err := http.Post(url, "application/json; charset=utf-8", strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestNewServerRequiresSemester(t *testing.T) {
	if _, err := NewServer(Config{}); err == nil {
		t.Error("NewServer() without semester error = nil, want error")
	}
}

func TestServerQueryPaths(t *testing.T) {
	_, ts := testServer(t, true)

	// The real upstream URL carries a double slash; both spellings must hit
	// the query handler instead of a redirect.
	for _, p := range []string{queryPath, queryPathClean} {
		t.Run(p, func(t *testing.T) {
			resp := postQuery(t, ts.URL+p, querycourse.DefaultQuery("1142"))
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}

			var courses []querycourse.Course
			if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(courses) != 2 {
				t.Errorf("got %d courses for semester 1142, want 2", len(courses))
			}
		})
	}
}

func TestServerQueryPreservesCountRepresentation(t *testing.T) {
	_, ts := testServer(t, true)

	resp := postQuery(t, ts.URL+queryPath, querycourse.QueryRequest{CourseNo: "EE1013301"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// The upstream delivered this count as a quoted string and the mock
	// must serve it back the same way.
	if !strings.Contains(string(raw), `"ChooseStudent":"30"`) {
		t.Errorf("response lost the quoted count: %s", raw)
	}
}

func TestServerQueryFilters(t *testing.T) {
	_, ts := testServer(t, true)

	query := querycourse.DefaultQuery("1142")
	query.CourseNo = "cs2006"
	resp := postQuery(t, ts.URL+queryPath, query)

	var courses []querycourse.Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(courses) != 1 || courses[0].CourseNo != "CS2006301" {
		t.Errorf("filtered query returned %+v, want only CS2006301", courses)
	}
}

func TestServerQueryBeforeLoad(t *testing.T) {
	_, ts := testServer(t, false)

	resp := postQuery(t, ts.URL+queryPath, querycourse.DefaultQuery("1142"))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 before data load", resp.StatusCode)
	}

	var detail map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if detail["detail"] == "" {
		t.Error("error body carries no detail")
	}
}

func TestServerQueryRejectsWrongMethod(t *testing.T) {
	_, ts := testServer(t, true)

	resp, err := http.Get(ts.URL + queryPath)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestServerQueryRejectsMalformedBody(t *testing.T) {
	_, ts := testServer(t, true)

	resp, err := http.Post(ts.URL+queryPath, "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServerRoot(t *testing.T) {
	_, ts := testServer(t, true)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var banner map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&banner); err != nil {
		t.Fatalf("decode banner: %v", err)
	}
	if banner["message"] == "" {
		t.Error("banner carries no message")
	}
}

func TestServerHealth(t *testing.T) {
	s, ts := testServer(t, true)
	s.repo.SimulateBatch(s.rng)

	resp, err := http.Get(ts.URL + healthPath)
	if err != nil {
		t.Fatalf("GET %s: %v", healthPath, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	want := healthResponse{Status: "healthy", CoursesCount: 3, UpdateCursor: 1}
	if health != want {
		t.Errorf("health = %+v, want %+v", health, want)
	}
}

func TestServerUnknownPath(t *testing.T) {
	_, ts := testServer(t, true)

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestWatcherClientAgainstMock(t *testing.T) {
	_, ts := testServer(t, true)

	// The watcher's own client, pointed at the mock with its standing
	// query, must get the semester's catalog back.
	client := querycourse.NewClient(ts.URL + queryPath)
	courses, err := client.Search(context.Background(), querycourse.DefaultQuery("1142"))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(courses))
	}
	if courses[0].ChooseStudent.Value != 48 || !courses[0].ChooseStudent.Valid {
		t.Errorf("count = %+v, want parsed 48", courses[0].ChooseStudent)
	}
}
