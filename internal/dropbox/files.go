package dropbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

const listFolderPath = "/2/files/list_folder"

// listFolderArg is the fixed request body for listing the account root.
// Field order matches the documented request.
type listFolderArg struct {
	Path                            string `json:"path"`
	Recursive                       bool   `json:"recursive"`
	IncludeMediaInfo                bool   `json:"include_media_info"`
	IncludeDeleted                  bool   `json:"include_deleted"`
	IncludeHasExplicitSharedMembers bool   `json:"include_has_explicit_shared_members"`
	IncludeMountedFolders           bool   `json:"include_mounted_folders"`
}

// rootListArg lists the top level of the account, mounted folders included.
var rootListArg = listFolderArg{
	Path:                  "",
	IncludeMountedFolders: true,
}

// listFolderResponse mirrors the list_folder result. Entries stays raw so a
// missing key can be told apart from an empty array.
type listFolderResponse struct {
	Entries json.RawMessage `json:"entries"`
	Cursor  string          `json:"cursor"`
	HasMore bool            `json:"has_more"`
}

// listFolderEntry holds the one field we read from a metadata entry.
// PathDisplay is untyped so entries with a non-string value can be skipped.
type listFolderEntry struct {
	PathDisplay any `json:"path_display"`
}

// ListRootFolders lists the account root in a single request and returns
// the path_display of every entry that has one as a string, in response
// order. The continuation cursor is not followed.
func (c *Client) ListRootFolders(ctx context.Context) ([]string, error) {
	data, err := c.rpc(ctx, listFolderPath, rootListArg)
	if err != nil {
		return nil, err
	}

	var resp listFolderResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding list_folder response: %w", ErrUnexpectedResponse, err)
	}

	raw := bytes.TrimSpace(resp.Entries)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("%w: list_folder response has no entries array", ErrUnexpectedResponse)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: list_folder entries is not an array: %w", ErrUnexpectedResponse, err)
	}

	paths := extractPaths(entries, c.logger)

	if resp.HasMore {
		c.logger.Warn("list_folder returned more entries than one page; continuation is not followed",
			slog.Int("listed", len(paths)),
			slog.Int("cursor_len", len(resp.Cursor)),
		)
	}

	c.logger.Info("listed root folder",
		slog.Int("entries", len(entries)),
		slog.Int("paths", len(paths)),
	)

	return paths, nil
}

// extractPaths collects string path_display values, preserving order.
// Entries that are not objects or lack a string path_display are skipped.
func extractPaths(entries []json.RawMessage, logger *slog.Logger) []string {
	paths := make([]string, 0, len(entries))

	for i, raw := range entries {
		var e listFolderEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			logger.Debug("skipping malformed entry", slog.Int("index", i), slog.String("error", err.Error()))

			continue
		}

		p, ok := e.PathDisplay.(string)
		if !ok {
			logger.Debug("skipping entry without path_display", slog.Int("index", i))

			continue
		}

		paths = append(paths, p)
	}

	return paths
}
