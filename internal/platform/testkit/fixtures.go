package testkit

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// LocCSV is a small change log: three commits over three days touching js, css and html
const LocCSV = `commit,file,line,depth,length,date,time,timezone,author,datetime,type
c1,index.html,1,0,15,2024-03-01,09:00:00-05:00,-05:00,me,2024-03-01T09:00:00.000-05:00,html
c1,index.html,2,1,22,2024-03-01,09:00:00-05:00,-05:00,me,2024-03-01T09:00:00.000-05:00,html
c1,style.css,1,0,10,2024-03-01,09:00:00-05:00,-05:00,me,2024-03-01T09:00:00.000-05:00,css
c2,main.js,1,0,30,2024-03-02,21:30:00-05:00,-05:00,me,2024-03-02T21:30:00.000-05:00,js
c2,main.js,2,1,28,2024-03-02,21:30:00-05:00,-05:00,me,2024-03-02T21:30:00.000-05:00,js
c3,main.js,3,1,12,2024-03-03,14:15:00-05:00,-05:00,me,2024-03-03T14:15:00.000-05:00,js
`

// ProjectsJSON is a small project gallery spanning two years
const ProjectsJSON = `[
  {"title": "Scatter Stories", "year": 2024, "image": "images/scatter.png", "description": "Commits as **dots**"},
  {"title": "Lab Notes", "year": "2023", "image": "images/lab.png", "description": "Weekly labs", "url": "https://example.com/lab"},
  {"title": "Weather Board", "year": 2024, "image": "images/wx.png", "description": "Forecast charts"},
  {"title": "First Site", "year": 2023, "image": "images/first.png", "description": "Where it started"}
]`

// ServeFiles starts a server answering GET path with its content; other paths are 404.
// The server is closed when the test ends
func ServeFiles(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteFiles writes name -> content under a fresh temp dir and returns the dir
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	return dir
}
