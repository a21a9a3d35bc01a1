package dropbox

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wantListFolderBody = `{"path":"","recursive":false,"include_media_info":false,` +
	`"include_deleted":false,"include_has_explicit_shared_members":false,"include_mounted_folders":true}`

// listServer serves list_folder with the given status and body and counts
// requests.
func listServer(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, listFolderPath, r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		reqBody, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, wantListFolderBody, string(reqBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestListRootFolders_PathsInOrder(t *testing.T) {
	srv := listServer(t, http.StatusOK,
		`{"entries":[{"path_display":"/A"},{"no_path":1},{"path_display":"/B"}],"cursor":"c","has_more":false}`, nil)

	paths, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/A", "/B"}, paths)
}

func TestListRootFolders_SkipsNonStringPaths(t *testing.T) {
	srv := listServer(t, http.StatusOK, `{"entries":[
		{".tag":"folder","path_display":"/Projects"},
		{".tag":"folder","path_display":5},
		{".tag":"file","path_display":null},
		7,
		"loose",
		{".tag":"file","path_display":"/notes.txt"}
	]}`, nil)

	paths, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/Projects", "/notes.txt"}, paths)
}

func TestListRootFolders_KeepsDuplicates(t *testing.T) {
	srv := listServer(t, http.StatusOK,
		`{"entries":[{"path_display":"/A"},{"path_display":"/A"}]}`, nil)

	paths, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/A", "/A"}, paths)
}

func TestListRootFolders_EmptyEntries(t *testing.T) {
	srv := listServer(t, http.StatusOK, `{"entries":[],"has_more":false}`, nil)

	paths, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
}

func TestListRootFolders_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing entries", `{"cursor":"c"}`},
		{"null entries", `{"entries":null}`},
		{"entries is object", `{"entries":{"path_display":"/A"}}`},
		{"entries is string", `{"entries":"/A"}`},
		{"not json", `<html>`},
		{"top-level array", `[{"path_display":"/A"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := listServer(t, http.StatusOK, tt.body, nil)

			_, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedResponse)
		})
	}
}

func TestListRootFolders_HTTPErrorKeepsBody(t *testing.T) {
	srv := listServer(t, http.StatusBadRequest, "bad request", nil)

	_, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "bad request")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad request", apiErr.Message)
}

func TestListRootFolders_DoesNotFollowCursor(t *testing.T) {
	var calls atomic.Int32

	srv := listServer(t, http.StatusOK,
		`{"entries":[{"path_display":"/A"}],"cursor":"AAE-more","has_more":true}`, &calls)

	paths, err := newTestClient(t, srv.URL).ListRootFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/A"}, paths)
	assert.Equal(t, int32(1), calls.Load())
}
