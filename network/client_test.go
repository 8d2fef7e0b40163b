package network

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client.timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want %v", client.timeout, 30*time.Second)
	}
	if client.maxRedirects != 10 {
		t.Errorf("default maxRedirects = %v, want %v", client.maxRedirects, 10)
	}

	client = NewClient(WithTimeout(5*time.Second), WithMaxRedirects(2), WithUserAgent("TestAgent/1.0"))
	if client.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want %v", client.timeout, 5*time.Second)
	}
	if client.userAgent != "TestAgent/1.0" {
		t.Errorf("userAgent = %v, want %v", client.userAgent, "TestAgent/1.0")
	}
}

func TestFetchDocument_HTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "TestAgent/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<p>Hello <b>World</b></p><p>again</p>"))
	}))
	defer server.Close()

	doc, err := NewClient(WithUserAgent("TestAgent/1.0")).FetchDocument(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchDocument() error = %v", err)
	}
	if got := doc.Lines(); len(got) != 2 || got[0] != "Hello World" || got[1] != "again" {
		t.Errorf("Lines() = %q", got)
	}
}

func TestFetchDocument_PlainTextGzip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("one\ntwo\n"))
		gz.Close()
	}))
	defer server.Close()

	doc, err := NewClient().FetchDocument(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchDocument() error = %v", err)
	}
	if got := len(doc.Paragraphs()); got != 2 {
		t.Errorf("paragraphs = %d, want 2", got)
	}
	if got := doc.CharacterCount(); got != 6 {
		t.Errorf("CharacterCount() = %d, want 6", got)
	}
}

func TestFetchDocument_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/image":
			w.Header().Set("Content-Type", "image/png")
			w.Write([]byte{0x89, 'P', 'N', 'G'})
		case "/big":
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(strings.Repeat("x", 64)))
		case "/loop":
			http.Redirect(w, r, "/loop", http.StatusFound)
		}
	}))
	defer server.Close()

	client := NewClient(WithMaxBodySize(32), WithMaxRedirects(3))
	for _, path := range []string{"/missing", "/image", "/big", "/loop"} {
		if _, err := client.FetchDocument(context.Background(), server.URL+path); err == nil {
			t.Errorf("FetchDocument(%s) expected error", path)
		}
	}
}

func TestParseContentType(t *testing.T) {
	tests := []struct {
		input       string
		wantType    string
		wantCharset string
	}{
		{"", "application/octet-stream", ""},
		{"text/html", "text/html", ""},
		{"Text/HTML; charset=UTF-8", "text/html", "utf-8"},
		{`text/plain; charset="iso-8859-1"`, "text/plain", "iso-8859-1"},
	}
	for _, tt := range tests {
		gotType, gotCharset := ParseContentType(tt.input)
		if gotType != tt.wantType || gotCharset != tt.wantCharset {
			t.Errorf("ParseContentType(%q) = %q, %q; want %q, %q", tt.input, gotType, gotCharset, tt.wantType, tt.wantCharset)
		}
	}
}

func TestIsURL(t *testing.T) {
	for s, want := range map[string]bool{
		"http://example.com":  true,
		"HTTPS://example.com": true,
		"doc.html":            false,
		"-":                   false,
	} {
		if got := IsURL(s); got != want {
			t.Errorf("IsURL(%q) = %v, want %v", s, got, want)
		}
	}
}
