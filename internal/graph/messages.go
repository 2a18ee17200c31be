package graph

import (
	"context"
	"fmt"
	"net/url"
)

// ListFolderMessages returns every message in one folder matching the given
// server-side $filter expression, following pagination links until exhausted.
// The filter value is URL-encoded here; OData escaping inside the expression
// is the caller's responsibility.
func (c *Client) ListFolderMessages(ctx context.Context, folderID, filter string) ([]Message, error) {
	query := url.Values{}
	query.Set("$select", "id,subject,sender,sentDateTime,parentFolderId")
	query.Set("$top", fmt.Sprint(c.pageSize))
	if filter != "" {
		query.Set("$filter", filter)
	}

	next := c.baseURL + "/me/mailFolders/" + url.PathEscape(folderID) + "/messages?" + query.Encode()

	var messages []Message
	for pages := 0; next != ""; pages++ {
		if pages >= c.pageLimit {
			return nil, fmt.Errorf("listing messages in folder %s: %w (limit %d)", folderID, ErrTooManyPages, c.pageLimit)
		}

		var page messagePage
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("failed to list messages in folder %s: %w", folderID, err)
		}

		messages = append(messages, page.Value...)
		next = page.NextLink
	}

	return messages, nil
}
