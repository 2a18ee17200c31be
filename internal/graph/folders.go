package graph

import (
	"context"
	"fmt"
	"net/url"
)

// ListAllFolders returns every mail folder in the mailbox, following
// pagination links until the server stops returning them. Order is the
// server-provided order; no sorting is applied.
func (c *Client) ListAllFolders(ctx context.Context) ([]Folder, error) {
	query := url.Values{}
	query.Set("$select", "id,displayName")
	query.Set("$top", fmt.Sprint(c.pageSize))

	next := c.baseURL + "/me/mailFolders?" + query.Encode()

	var folders []Folder
	for pages := 0; next != ""; pages++ {
		if pages >= c.pageLimit {
			return nil, fmt.Errorf("listing folders: %w (limit %d)", ErrTooManyPages, c.pageLimit)
		}

		var page folderPage
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("failed to list folders: %w", err)
		}

		folders = append(folders, page.Value...)
		next = page.NextLink
	}

	return folders, nil
}
