package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lines(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "LF line endings",
			body: "BEGIN:VCALENDAR\nVERSION:2.0\nEND:VCALENDAR\n",
			want: []string{"BEGIN:VCALENDAR", "VERSION:2.0", "END:VCALENDAR"},
		},
		{
			name: "CRLF line endings",
			body: "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n",
			want: []string{"BEGIN:VCALENDAR", "VERSION:2.0", "END:VCALENDAR"},
		},
		{
			name: "no trailing newline",
			body: "BEGIN:VCALENDAR\nEND:VCALENDAR",
			want: []string{"BEGIN:VCALENDAR", "END:VCALENDAR"},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body)) // nolint:errcheck
			}))
			defer server.Close()

			got, err := New().Lines(server.URL)
			if err != nil {
				t.Fatalf("Lines() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() returned %d lines, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClient_Text(t *testing.T) {
	const body = "<html><body><div>2026 FOMC Meetings</div></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body)) // nolint:errcheck
	}))
	defer server.Close()

	got, err := New().Text(server.URL)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != body {
		t.Errorf("Text() = %q, want %q", got, body)
	}
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotUA, gotAccept string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("ok")) // nolint:errcheck
	}))
	defer server.Close()

	if _, err := New().Text(server.URL); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if gotUA != UserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, UserAgent)
	}
	if gotAccept != Accept {
		t.Errorf("Accept = %q, want %q", gotAccept, Accept)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"forbidden", http.StatusForbidden, true},
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("body")) // nolint:errcheck
			}))
			defer server.Close()

			_, err := New().Text(server.URL)
			if (err != nil) != tt.wantErr {
				t.Errorf("Text() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
