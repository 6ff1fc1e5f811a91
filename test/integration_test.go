// ABOUTME: Integration tests for neonotes CLI commands.
// ABOUTME: Tests full workflows against a real badger store on disk.

package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var neonotesBin string

func TestMain(m *testing.M) {
	// Build neonotes binary
	cmd := exec.Command("go", "build", "-o", "bin/neonotes", "./cmd/neonotes")
	cmd.Dir = ".."
	if err := cmd.Run(); err != nil {
		panic(err)
	}

	wd, _ := os.Getwd()
	neonotesBin = filepath.Join(wd, "..", "bin", "neonotes")

	os.Exit(m.Run())
}

func TestBrowseSeededNotes(t *testing.T) {
	home := t.TempDir()

	out, err := runNeonotes(home, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, out)
	}
	for _, title := range []string{"Introduction to React Hooks", "Machine Learning Basics"} {
		if !strings.Contains(out, title) {
			t.Errorf("expected %q in list: %s", title, out)
		}
	}

	out, _ = runNeonotes(home, "list", "--search", "calculus")
	if !strings.Contains(out, "Advanced Calculus") {
		t.Errorf("expected calculus note in search: %s", out)
	}
	if strings.Contains(out, "Organic Chemistry") {
		t.Errorf("did not expect chemistry note in search: %s", out)
	}

	out, _ = runNeonotes(home, "home")
	if !strings.Contains(out, "Recently Added") || !strings.Contains(out, "Most Popular") {
		t.Errorf("expected home sections: %s", out)
	}
}

var publishedID = regexp.MustCompile(`Published .* \(([0-9a-f-]+)\)`)

func TestUploadShowCommentDownload(t *testing.T) {
	home := t.TempDir()

	out, err := runNeonotes(home, "upload", "Test Note", "--content", "Test content here")
	if err == nil {
		t.Fatalf("expected upload to require sign in: %s", out)
	}

	out, err = runNeonotes(home, "login", "alex@example.com", "--password", "student")
	if err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}

	out, err = runNeonotes(home, "upload", "Test Note", "--content", "Test content here", "--tag", "testing")
	if err != nil {
		t.Fatalf("upload failed: %v\n%s", err, out)
	}
	m := publishedID.FindStringSubmatch(out)
	if m == nil {
		t.Fatalf("could not extract note ID: %s", out)
	}
	id := m[1]

	out, err = runNeonotes(home, "comment", id[:8], "Very", "helpful")
	if err != nil {
		t.Fatalf("comment failed: %v\n%s", err, out)
	}

	out, err = runNeonotes(home, "show", id[:8])
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	for _, want := range []string{"Test content", "Very helpful", "Alex Student"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in show: %s", want, out)
		}
	}

	dest := filepath.Join(home, "out.txt")
	out, err = runNeonotes(home, "download", id, "-o", dest)
	if err != nil {
		t.Fatalf("download failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read download: %v", err)
	}
	if string(data) != "Test content here" {
		t.Errorf("downloaded %q", data)
	}
}

func TestLikeToggle(t *testing.T) {
	home := t.TempDir()

	out, err := runNeonotes(home, "like", "n3")
	if err != nil {
		t.Fatalf("like failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Liked") || !strings.Contains(out, "90 likes") {
		t.Errorf("expected like confirmation: %s", out)
	}

	out, _ = runNeonotes(home, "like", "n3")
	if !strings.Contains(out, "Unliked") || !strings.Contains(out, "89 likes") {
		t.Errorf("expected unlike confirmation: %s", out)
	}
}

func TestAuthAndStats(t *testing.T) {
	home := t.TempDir()

	out, err := runNeonotes(home, "login", "admin@neonotes.com", "--password", "nope")
	if err == nil || !strings.Contains(out, "invalid credentials") {
		t.Errorf("expected invalid credentials: %v\n%s", err, out)
	}

	out, _ = runNeonotes(home, "whoami")
	if !strings.Contains(out, "Not signed in") {
		t.Errorf("expected signed out: %s", out)
	}

	if out, err := runNeonotes(home, "login", "admin@neonotes.com", "--password", "admin"); err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}
	out, err = runNeonotes(home, "stats")
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "$179.76") {
		t.Errorf("expected revenue estimate: %s", out)
	}

	if out, err := runNeonotes(home, "logout"); err != nil {
		t.Fatalf("logout failed: %v\n%s", err, out)
	}
	if _, err := runNeonotes(home, "stats"); err == nil {
		t.Error("expected stats to fail when signed out")
	}
}

func TestExportImport(t *testing.T) {
	home := t.TempDir()
	backup := filepath.Join(home, "backup.json")

	if out, err := runNeonotes(home, "export", "-o", backup); err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	var export struct {
		Notes []map[string]any `json:"notes"`
	}
	data, _ := os.ReadFile(backup)
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("bad export: %v", err)
	}
	if len(export.Notes) != 4 {
		t.Errorf("exported %d notes, want 4", len(export.Notes))
	}

	only := filepath.Join(home, "one.json")
	if err := os.WriteFile(only, []byte(`[{"id":"solo","title":"Solo Note","tags":[],"comments":[]}]`), 0644); err != nil {
		t.Fatal(err)
	}
	if out, err := runNeonotes(home, "import", only); err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	out, _ := runNeonotes(home, "list")
	if !strings.Contains(out, "Solo Note") || strings.Contains(out, "Machine Learning") {
		t.Errorf("expected only imported note: %s", out)
	}

	mdDir := filepath.Join(home, "md")
	if out, err := runNeonotes(home, "export", "-f", "md", "-o", mdDir); err != nil {
		t.Fatalf("md export failed: %v\n%s", err, out)
	}
	md, err := os.ReadFile(filepath.Join(mdDir, "Solo_Note.md"))
	if err != nil {
		t.Fatalf("read md export: %v", err)
	}
	if !strings.HasPrefix(string(md), "---\nid: solo\n") {
		t.Errorf("unexpected front matter: %s", md)
	}
}

func TestSummarizeWithoutKey(t *testing.T) {
	home := t.TempDir()

	out, err := runNeonotes(home, "summarize", "n1")
	if err != nil {
		t.Fatalf("summarize failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "API Key not configured.") {
		t.Errorf("expected fallback message: %s", out)
	}
}

func runNeonotes(home string, args ...string) (string, error) {
	cmd := exec.Command(neonotesBin, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(home, "config"),
		"XDG_DATA_HOME="+filepath.Join(home, "data"),
		"NEONOTES_STORE=badger",
		"NEONOTES_DB="+filepath.Join(home, "store"),
		"GEMINI_API_KEY=",
		"API_KEY=",
		"NO_COLOR=1",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
