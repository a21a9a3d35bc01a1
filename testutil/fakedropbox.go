package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Fake endpoint paths, mirroring the real API.
const (
	TokenPath      = "/oauth2/token"
	ListFolderPath = "/2/files/list_folder"
	SharePath      = "/2/sharing/share_folder_batch"
)

// FakeDropboxConfig fixes how a FakeDropbox answers. It is copied at
// construction, so handlers never race with the test goroutine.
type FakeDropboxConfig struct {
	ClientID     string
	ClientSecret string
	AccessToken  string

	ListStatus int    // default 200
	ListBody   string // raw list_folder response body

	ShareStatus int    // default 200
	ShareBody   string // raw share_folder_batch response body
}

// FakeDropbox is an httptest server speaking the token, list_folder and
// share_folder_batch endpoints. Token and API share one base URL.
type FakeDropbox struct {
	*httptest.Server

	cfg FakeDropboxConfig

	mu          sync.Mutex
	tokenCalls  int
	listCalls   int
	shareCalls  int
	shareBodies [][]byte
}

// NewFakeDropbox starts a fake server and registers its shutdown with t.
func NewFakeDropbox(t testing.TB, cfg FakeDropboxConfig) *FakeDropbox {
	t.Helper()

	if cfg.ListStatus == 0 {
		cfg.ListStatus = http.StatusOK
	}

	if cfg.ShareStatus == 0 {
		cfg.ShareStatus = http.StatusOK
	}

	f := &FakeDropbox{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+TokenPath, f.handleToken)
	mux.HandleFunc("POST "+ListFolderPath, f.handleList)
	mux.HandleFunc("POST "+SharePath, f.handleShare)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)

	return f
}

// TokenURL is the fake token endpoint.
func (f *FakeDropbox) TokenURL() string {
	return f.URL + TokenPath
}

// Calls returns how often each endpoint was hit.
func (f *FakeDropbox) Calls() (token, list, share int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.tokenCalls, f.listCalls, f.shareCalls
}

// ShareBodies returns the raw share_folder_batch request bodies received.
func (f *FakeDropbox) ShareBodies() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([][]byte, len(f.shareBodies))
	copy(out, f.shareBodies)

	return out
}

func (f *FakeDropbox) handleToken(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.tokenCalls++
	f.mu.Unlock()

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if r.PostForm.Get("grant_type") != "client_credentials" ||
		r.PostForm.Get("client_id") != f.cfg.ClientID ||
		r.PostForm.Get("client_secret") != f.cfg.ClientSecret {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Invalid client_id or client_secret"}`))

		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"access_token": f.cfg.AccessToken,
		"token_type":   "bearer",
	})
}

func (f *FakeDropbox) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Authorization") != "Bearer "+f.cfg.AccessToken {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_summary":"invalid_access_token/..","error":{".tag":"invalid_access_token"}}`))

		return false
	}

	return true
}

func (f *FakeDropbox) handleList(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	f.mu.Unlock()

	if !f.authorized(w, r) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.cfg.ListStatus)
	_, _ = w.Write([]byte(f.cfg.ListBody))
}

func (f *FakeDropbox) handleShare(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.shareCalls++
	f.shareBodies = append(f.shareBodies, body)
	f.mu.Unlock()

	if !f.authorized(w, r) {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.cfg.ShareStatus)
	_, _ = w.Write([]byte(f.cfg.ShareBody))
}
