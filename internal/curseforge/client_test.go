package curseforge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"mdl/internal/config"
	"mdl/internal/models"
)

// newTestSite serves the fixtures in testdata the way the site lays out its pages
func newTestSite(t *testing.T) (*httptest.Server, *[]*http.Request) {
	t.Helper()
	var requests []*http.Request

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r)
		if r.URL.Query().Get("search") == "nothing" {
			fmt.Fprint(w, `<html><body><table class="listing"><tbody></tbody></table></body></html>`)
			return
		}
		serveFixture(t, w, "search.html")
	})
	mux.HandleFunc("/projects/jei/files", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r)
		serveFixture(t, w, "files.html")
	})
	mux.HandleFunc("/projects/broken/files", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r)
		fmt.Fprint(w, `<table><tr class="project-file-list-item"><td>nothing useful</td></tr></table>`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &requests
}

func serveFixture(t *testing.T, w http.ResponseWriter, name string) {
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Errorf("Failed to read fixture %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(config.Site{BaseURL: baseURL, UserAgent: "mdl-test"}, nil, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// TestNewClient tests base URL validation
func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "https site", baseURL: "https://minecraft.curseforge.com"},
		{name: "trailing slash", baseURL: "https://minecraft.curseforge.com/"},
		{name: "relative", baseURL: "/projects", wantErr: true},
		{name: "garbage", baseURL: "://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(config.Site{BaseURL: tt.baseURL}, nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
			}
		})
	}
}

// TestURLs tests construction of page and download URLs
func TestURLs(t *testing.T) {
	client := newTestClient(t, "https://minecraft.curseforge.com/")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "search",
			got:  client.SearchURL("just enough items"),
			want: "https://minecraft.curseforge.com/search?search=just+enough+items",
		},
		{
			name: "search escapes reserved characters",
			got:  client.SearchURL("a&b=c"),
			want: "https://minecraft.curseforge.com/search?search=a%26b%3Dc",
		},
		{
			name: "files",
			got:  client.FilesURL("jei"),
			want: "https://minecraft.curseforge.com/projects/jei/files",
		},
		{
			name: "download",
			got:  client.DownloadURL("jei", 2724420),
			want: "https://minecraft.curseforge.com/projects/jei/files/2724420/download",
		},
		{
			name: "download escapes slug",
			got:  client.DownloadURL("odd slug", 1),
			want: "https://minecraft.curseforge.com/projects/odd%20slug/files/1/download",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

// TestSearch tests searching against a fixture site
func TestSearch(t *testing.T) {
	server, requests := newTestSite(t)
	client := newTestClient(t, server.URL)

	mods, err := client.Search(context.Background(), "just enough")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if len(mods) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(mods))
	}
	if mods[0].Slug != "jei" || mods[0].ID != 238222 {
		t.Errorf("Unexpected first result %+v", mods[0])
	}

	req := (*requests)[0]
	if got := req.URL.Query().Get("search"); got != "just enough" {
		t.Errorf("Expected search parameter %q, got %q", "just enough", got)
	}
	if got := req.Header.Get("User-Agent"); got != "mdl-test" {
		t.Errorf("Expected User-Agent mdl-test, got %q", got)
	}
}

// TestSearchNoResults tests that an empty result page is not an error
func TestSearchNoResults(t *testing.T) {
	server, _ := newTestSite(t)
	client := newTestClient(t, server.URL)

	mods, err := client.Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(mods) != 0 {
		t.Errorf("Expected no results, got %d", len(mods))
	}
}

// TestFiles tests that every file link is synthesized from slug and file id
func TestFiles(t *testing.T) {
	server, _ := newTestSite(t)
	client := newTestClient(t, server.URL)

	files, err := client.Files(context.Background(), "jei")
	if err != nil {
		t.Fatalf("Files() error = %v", err)
	}

	wantIDs := []int{2724420, 2593381, 2665217}
	if len(files) != len(wantIDs) {
		t.Fatalf("Expected %d files, got %d", len(wantIDs), len(files))
	}
	for i, id := range wantIDs {
		if files[i].ID != id {
			t.Errorf("File %d: expected id %d, got %d", i, id, files[i].ID)
		}
		want := fmt.Sprintf("%s/projects/jei/files/%d/download", server.URL, id)
		if files[i].Link != want {
			t.Errorf("File %d: expected link %q, got %q", i, want, files[i].Link)
		}
	}
}

// TestFile tests looking up a single file record by id
func TestFile(t *testing.T) {
	server, _ := newTestSite(t)
	client := newTestClient(t, server.URL)

	file, err := client.File(context.Background(), "jei", 2665217)
	if err != nil {
		t.Fatalf("File() error = %v", err)
	}
	if file.Name != "jei_1.12.2-4.12.1.217.jar" {
		t.Errorf("Unexpected file %+v", file)
	}

	_, err = client.File(context.Background(), "jei", 1)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown file id, got %v", err)
	}
	if errors.Is(err, models.ErrParse) || errors.Is(err, models.ErrNetwork) {
		t.Errorf("Unknown file id should not be a parse or network error: %v", err)
	}
}

// TestErrorKinds tests that failures surface as distinct error kinds
func TestErrorKinds(t *testing.T) {
	server, _ := newTestSite(t)
	client := newTestClient(t, server.URL)

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()
	offline := newTestClient(t, closedURL)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "missing project page",
			call: func() error {
				_, err := client.Files(context.Background(), "missing")
				return err
			},
			want: models.ErrNetwork,
		},
		{
			name: "connection refused",
			call: func() error {
				_, err := offline.Search(context.Background(), "jei")
				return err
			},
			want: models.ErrNetwork,
		},
		{
			name: "changed layout",
			call: func() error {
				_, err := client.Files(context.Background(), "broken")
				return err
			},
			want: models.ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestSearchCanceled tests that a canceled context aborts the request
func TestSearchCanceled(t *testing.T) {
	server, _ := newTestSite(t)
	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, "jei")
	if err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Errorf("Expected canceled error, got %v", err)
	}
}
