package graph

import "time"

// Folder is a mail folder as returned by the mailFolders endpoint
type Folder struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Message carries the subset of message fields the search pipeline needs.
// ParentFolderID ties the message back to the folder it was fetched from.
type Message struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	Sender         Recipient `json:"sender"`
	SentDateTime   time.Time `json:"sentDateTime"`
	ParentFolderID string    `json:"parentFolderId"`
}

// Recipient wraps the nested emailAddress object Graph uses for senders
// and recipients
type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

// EmailAddress is a display name plus address pair
type EmailAddress struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SenderName returns the sender's display name
func (m Message) SenderName() string {
	return m.Sender.EmailAddress.Name
}

// folderPage is one page of the folder collection
type folderPage struct {
	Value    []Folder `json:"value"`
	NextLink string   `json:"@odata.nextLink"`
}

// messagePage is one page of a folder's message collection
type messagePage struct {
	Value    []Message `json:"value"`
	NextLink string    `json:"@odata.nextLink"`
}
