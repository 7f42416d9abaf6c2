package drivefs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// fakeDrive serves the subset of the Drive v3 files API used by DriveFS.
type fakeDrive struct {
	mu    sync.Mutex
	order []string
	files map[string]*drive.File
}

const folderMime = "application/vnd.google-apps.folder"

var (
	queryByName     = regexp.MustCompile(`^name = '((?:[^'\\]|\\.)*)' and '([^']*)' in parents and trashed = false$`)
	queryByParent   = regexp.MustCompile(`^'([^']*)' in parents and trashed = false$`)
	unescapeQueryer = strings.NewReplacer(`\\`, `\`, `\'`, `'`)
)

func newFakeDrive(t *testing.T) (*fakeDrive, *drive.Service) {
	t.Helper()
	f := &fakeDrive{files: map[string]*drive.File{}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	service, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("drive.NewService() error = %v", err)
	}
	return f, service
}

// add stores an item and returns its generated ID.
func (f *fakeDrive) add(name, mime string, parents ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(&drive.File{Name: name, MimeType: mime, Parents: parents})
}

func (f *fakeDrive) addLocked(file *drive.File) string {
	file.Id = uuid.NewString()
	file.ModifiedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC).Format(time.RFC3339)
	f.files[file.Id] = file
	f.order = append(f.order, file.Id)
	return file.Id
}

func (f *fakeDrive) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.files)
}

func (f *fakeDrive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/files":
		f.list(w, r.URL.Query().Get("q"))
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/files/"):
		file, ok := f.files[strings.TrimPrefix(r.URL.Path, "/files/")]
		if !ok {
			writeError(w, http.StatusNotFound, "file not found")
			return
		}
		writeJSON(w, file)
	case r.Method == http.MethodPost && r.URL.Path == "/files":
		var file drive.File
		if err := json.NewDecoder(r.Body).Decode(&file); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.addLocked(&file)
		writeJSON(w, &file)
	default:
		writeError(w, http.StatusNotImplemented, r.Method+" "+r.URL.Path)
	}
}

func (f *fakeDrive) list(w http.ResponseWriter, q string) {
	var name, parent string
	byName := false
	if m := queryByName.FindStringSubmatch(q); m != nil {
		name, parent, byName = unescapeQueryer.Replace(m[1]), m[2], true
	} else if m := queryByParent.FindStringSubmatch(q); m != nil {
		parent = m[1]
	} else {
		writeError(w, http.StatusBadRequest, "unsupported query: "+q)
		return
	}

	list := &drive.FileList{Files: []*drive.File{}}
	for _, id := range f.order {
		file := f.files[id]
		if !slices.Contains(file.Parents, parent) {
			continue
		}
		if byName && file.Name != name {
			continue
		}
		list.Files = append(list.Files, file)
	}
	writeJSON(w, list)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": msg},
	})
}
