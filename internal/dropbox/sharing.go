package dropbox

import (
	"context"
	"errors"
	"log/slog"
)

const shareFolderBatchPath = "/2/sharing/share_folder_batch"

// AccessLevelEditor is the only access level dropbox-share grants.
const AccessLevelEditor = "editor"

const memberTagEmail = "email"

// ShareFolderBatchArg is the share_folder_batch request body.
type ShareFolderBatchArg struct {
	Entries []ShareFolderEntry `json:"entries"`
}

// ShareFolderEntry shares one folder with a set of members.
type ShareFolderEntry struct {
	Path    string      `json:"path"`
	Members []AddMember `json:"members"`
}

// AddMember pairs a member selector with the access level to grant.
type AddMember struct {
	Member      MemberSelector `json:"member"`
	AccessLevel AccessLevel    `json:"access_level"`
}

// MemberSelector identifies a member by email, tagged the Dropbox way.
type MemberSelector struct {
	Tag   string `json:".tag"`
	Email string `json:"email"`
}

// AccessLevel is a tagged access level union; only the tag is used.
type AccessLevel struct {
	Tag string `json:".tag"`
}

// BuildShareBatch builds one entry per folder path, in order, each granting
// every recipient editor access.
func BuildShareBatch(paths, recipients []string) ShareFolderBatchArg {
	arg := ShareFolderBatchArg{Entries: make([]ShareFolderEntry, 0, len(paths))}

	for _, p := range paths {
		members := make([]AddMember, 0, len(recipients))
		for _, email := range recipients {
			members = append(members, AddMember{
				Member:      MemberSelector{Tag: memberTagEmail, Email: email},
				AccessLevel: AccessLevel{Tag: AccessLevelEditor},
			})
		}

		arg.Entries = append(arg.Entries, ShareFolderEntry{Path: p, Members: members})
	}

	return arg
}

// ShareFolderBatch shares every folder in paths with every recipient in one
// request. An HTTP-level rejection is returned as *ShareError wrapping the
// *APIError; transport failures are returned unwrapped. The API gives no
// per-folder outcome, so partial success cannot be reported. An empty path
// list sends nothing.
func (c *Client) ShareFolderBatch(ctx context.Context, paths, recipients []string) error {
	if len(paths) == 0 {
		c.logger.Info("no folders to share")

		return nil
	}

	c.logger.Info("sharing folders",
		slog.Int("folders", len(paths)),
		slog.Int("recipients", len(recipients)),
		slog.String("access_level", AccessLevelEditor),
	)

	if _, err := c.rpc(ctx, shareFolderBatchPath, BuildShareBatch(paths, recipients)); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return &ShareError{Folders: len(paths), Err: apiErr}
		}

		return err
	}

	c.logger.Info("share batch accepted", slog.Int("folders", len(paths)))

	return nil
}
