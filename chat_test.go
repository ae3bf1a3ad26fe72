package main

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestThreadKeySymmetry(t *testing.T) {
	cases := []struct {
		a, b uint
		want string
	}{
		{5, 9, "5-9"},
		{9, 5, "5-9"},
		{1, 2, "1-2"},
		{7, 7, "7-7"},
		{10, 9, "10-9"}, // lexicographic, not numeric
	}

	for _, tc := range cases {
		if got := threadKey(tc.a, tc.b); got != tc.want {
			t.Errorf("threadKey(%d,%d) = %q, want %q", tc.a, tc.b, got, tc.want)
		}
		if threadKey(tc.a, tc.b) != threadKey(tc.b, tc.a) {
			t.Errorf("threadKey(%d,%d) != threadKey(%d,%d)", tc.a, tc.b, tc.b, tc.a)
		}
	}
}

type chatThreadResponse struct {
	Partner  map[string]interface{} `json:"partner"`
	Messages []ChatMessage          `json:"messages"`
}

func fetchThread(t *testing.T, r *gin.Engine, auth string, partnerID uint) chatThreadResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/chats/%d", partnerID), auth, nil)
	wantStatus(t, w, http.StatusOK)

	var body chatThreadResponse
	decodeBody(t, w, &body)
	return body
}

func TestChatBothSidesReadSameThread(t *testing.T) {
	app, r := newTestApp(t)
	alice := createUser(t, app, "coordinator@example.com", "Maria Rodriguez")
	bob := createUser(t, app, "leader@example.com", "Thomas Wilson")
	authA := bearerToken(t, alice.ID)
	authB := bearerToken(t, bob.ID)

	send := func(auth string, to uint, text string) {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/chats/%d/messages", to), auth, SendMessageRequest{Text: text})
		wantStatus(t, w, http.StatusCreated)
	}

	send(authA, bob.ID, "Hello Thomas")
	send(authB, alice.ID, "Hello Maria")
	send(authA, bob.ID, "  See you at Session 1  ")

	fromA := fetchThread(t, r, authA, bob.ID)
	fromB := fetchThread(t, r, authB, alice.ID)

	if len(fromA.Messages) != 3 || len(fromB.Messages) != 3 {
		t.Fatalf("message counts: A=%d B=%d, want 3 each", len(fromA.Messages), len(fromB.Messages))
	}
	for i := range fromA.Messages {
		a, b := fromA.Messages[i], fromB.Messages[i]
		if a.ID != b.ID || a.Text != b.Text || a.SenderID != b.SenderID {
			t.Errorf("message %d differs between sides: %+v vs %+v", i, a, b)
		}
	}

	if fromA.Messages[2].Text != "See you at Session 1" {
		t.Errorf("text = %q, want it trimmed", fromA.Messages[2].Text)
	}
	if fromA.Messages[0].SenderName != "Maria Rodriguez" || fromA.Messages[1].SenderName != "Thomas Wilson" {
		t.Errorf("sender snapshots: %q, %q", fromA.Messages[0].SenderName, fromA.Messages[1].SenderName)
	}
}

func TestChatRejectsEmptyText(t *testing.T) {
	app, r := newTestApp(t)
	alice := createUser(t, app, "coordinator@example.com", "Maria Rodriguez")
	bob := createUser(t, app, "leader@example.com", "Thomas Wilson")
	auth := bearerToken(t, alice.ID)

	for _, text := range []string{"", "   ", "\n\t"} {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/chats/%d/messages", bob.ID), auth, SendMessageRequest{Text: text})
		wantStatus(t, w, http.StatusBadRequest)
	}

	var n int64
	app.DB.Model(&ChatMessage{}).Count(&n)
	if n != 0 {
		t.Errorf("%d messages stored, want 0", n)
	}
}

func TestChatUnknownPartner(t *testing.T) {
	app, r := newTestApp(t)
	alice := createUser(t, app, "coordinator@example.com", "Maria Rodriguez")
	auth := bearerToken(t, alice.ID)

	w := doJSON(t, r, http.MethodPost, "/api/chats/9999/messages", auth, SendMessageRequest{Text: "anyone there?"})
	wantStatus(t, w, http.StatusNotFound)

	w = doJSON(t, r, http.MethodGet, "/api/chats/9999", auth, nil)
	wantStatus(t, w, http.StatusNotFound)
}

func TestChatSenderNameSnapshotIsNotRetroactive(t *testing.T) {
	app, r := newTestApp(t)
	alice := createUser(t, app, "coordinator@example.com", "Maria Rodriguez")
	bob := createUser(t, app, "leader@example.com", "Thomas Wilson")
	auth := bearerToken(t, alice.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/chats/%d/messages", bob.ID), auth, SendMessageRequest{Text: "first"})
	wantStatus(t, w, http.StatusCreated)

	newName := "Maria Rodriguez-Lopez"
	w = doJSON(t, r, http.MethodPut, "/api/profile", auth, UpdateProfileRequest{FullName: &newName})
	wantStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/chats/%d/messages", bob.ID), auth, SendMessageRequest{Text: "second"})
	wantStatus(t, w, http.StatusCreated)

	thread := fetchThread(t, r, auth, bob.ID)
	if len(thread.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(thread.Messages))
	}
	if thread.Messages[0].SenderName != "Maria Rodriguez" {
		t.Errorf("old message renamed retroactively: %q", thread.Messages[0].SenderName)
	}
	if thread.Messages[1].SenderName != "Maria Rodriguez-Lopez" {
		t.Errorf("new message kept the stale name: %q", thread.Messages[1].SenderName)
	}
}
