package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestListAllFolders_Pagination(t *testing.T) {
	var srv *httptest.Server
	requests := 0

	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/me/mailFolders" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		switch r.URL.Query().Get("page") {
		case "":
			if got := r.URL.Query().Get("$top"); got != "50" {
				t.Errorf("$top = %q, want 50", got)
			}
			fmt.Fprintf(w, `{"value":[{"id":"f1","displayName":"Inbox"},{"id":"f2","displayName":"Junk"}],"@odata.nextLink":"%s/me/mailFolders?page=2"}`, srv.URL)
		case "2":
			fmt.Fprintf(w, `{"value":[{"id":"f3","displayName":"Archive"}],"@odata.nextLink":"%s/me/mailFolders?page=3"}`, srv.URL)
		case "3":
			fmt.Fprint(w, `{"value":[{"id":"f4","displayName":"Sent Items"}]}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	folders, err := c.ListAllFolders(context.Background())
	if err != nil {
		t.Fatalf("ListAllFolders failed: %v", err)
	}

	if requests != 3 {
		t.Errorf("expected 3 page requests, got %d", requests)
	}

	wantIDs := []string{"f1", "f2", "f3", "f4"}
	if len(folders) != len(wantIDs) {
		t.Fatalf("expected %d folders, got %d", len(wantIDs), len(folders))
	}
	for i, id := range wantIDs {
		if folders[i].ID != id {
			t.Errorf("folder %d = %q, want %q (page order must be preserved)", i, folders[i].ID, id)
		}
	}
}

func TestListFolderMessages_Query(t *testing.T) {
	const filter = "(contains(subject,'invoice')) and receivedDateTime ge 2024-11-01T00:00:00Z"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/mailFolders/folder-1/messages" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("$filter"); got != filter {
			t.Errorf("$filter = %q, want %q", got, filter)
		}
		if got := r.URL.Query().Get("$select"); !strings.Contains(got, "parentFolderId") {
			t.Errorf("$select = %q, want parentFolderId included", got)
		}

		fmt.Fprint(w, `{"value":[{
			"id":"m1",
			"subject":"Invoice #1",
			"sender":{"emailAddress":{"name":"Acme Billing","address":"billing@acme.test"}},
			"sentDateTime":"2024-11-05T09:30:00Z",
			"parentFolderId":"folder-1"
		}]}`)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	messages, err := c.ListFolderMessages(context.Background(), "folder-1", filter)
	if err != nil {
		t.Fatalf("ListFolderMessages failed: %v", err)
	}

	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	m := messages[0]
	if m.Subject != "Invoice #1" {
		t.Errorf("Subject = %q", m.Subject)
	}
	if m.SenderName() != "Acme Billing" {
		t.Errorf("SenderName() = %q", m.SenderName())
	}
	if m.ParentFolderID != "folder-1" {
		t.Errorf("ParentFolderID = %q", m.ParentFolderID)
	}
	want := time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC)
	if !m.SentDateTime.Equal(want) {
		t.Errorf("SentDateTime = %v, want %v", m.SentDateTime, want)
	}
}

func TestGetJSON_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"InvalidFilter"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.ListAllFolders(context.Background())
	if err == nil {
		t.Fatal("expected error for non-2xx response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error %q should mention the status", err)
	}
}

func TestGetJSON_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value": not-json`)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.ListAllFolders(context.Background())
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("error %q should mention decoding", err)
	}
}

func TestPageLimit(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Misbehaving server: never stops paginating
		fmt.Fprintf(w, `{"value":[{"id":"f","displayName":"Loop"}],"@odata.nextLink":"%s/me/mailFolders?page=again"}`, srv.URL)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client(), WithPageLimit(3))
	_, err := c.ListAllFolders(context.Background())
	if !errors.Is(err, ErrTooManyPages) {
		t.Fatalf("expected ErrTooManyPages, got %v", err)
	}
}
