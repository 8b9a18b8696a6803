package store

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

type testPost struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status,omitempty"`
}

func setupCollection(t *testing.T) *Collection[testPost] {
	t.Helper()
	return &Collection[testPost]{
		Path: filepath.Join(t.TempDir(), "posts.json"),
		Key:  func(p testPost) string { return strconv.Itoa(p.ID) },
		Validate: func(p testPost) error {
			if p.Title == "" {
				return Validationf("title is required")
			}
			return nil
		},
	}
}

func TestEnsureSeedsEmptyArray(t *testing.T) {
	c := setupCollection(t)

	if err := c.Ensure(); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		t.Fatalf("collection file should exist: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("seed content = %q, want %q", data, "[]")
	}

	// Ensure is idempotent
	if err := c.Ensure(); err != nil {
		t.Fatalf("second Ensure failed: %v", err)
	}
}

func TestEnsureWritesSeed(t *testing.T) {
	c := setupCollection(t)
	c.Seed = []testPost{{ID: 1, Title: "Seeded", Excerpt: "s"}}

	got, err := c.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Seeded" {
		t.Errorf("All = %v, want the seed record", got)
	}
}

func TestAppendAndAll(t *testing.T) {
	c := setupCollection(t)

	created, err := c.Append(testPost{ID: 1, Title: "T", Excerpt: "E"})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("ID = %d, want 1", created.ID)
	}

	got, err := c.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("All count = %d, want 1", len(got))
	}
	if got[0].Title != "T" || got[0].Excerpt != "E" {
		t.Errorf("record = %+v, want title T excerpt E", got[0])
	}
}

func TestPrependOrdersNewestFirst(t *testing.T) {
	c := setupCollection(t)

	if _, err := c.Prepend(testPost{ID: 1, Title: "First"}); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if _, err := c.Prepend(testPost{ID: 2, Title: "Second"}); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	got, err := c.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Errorf("order = [%d %d], want [2 1]", got[0].ID, got[1].ID)
	}
}

func TestInsertRejectsInvalidRecord(t *testing.T) {
	c := setupCollection(t)

	_, err := c.Append(testPost{ID: 1, Excerpt: "no title"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, _ := c.All()
	if len(got) != 0 {
		t.Errorf("invalid record should not be persisted, got %d records", len(got))
	}
}

func TestInsertRejectsDuplicateID(t *testing.T) {
	c := setupCollection(t)

	if _, err := c.Append(testPost{ID: 1, Title: "A"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := c.Append(testPost{ID: 1, Title: "B"}); err == nil {
		t.Error("duplicate identifier should be rejected")
	}
}

func TestGet(t *testing.T) {
	c := setupCollection(t)

	if _, err := c.Append(testPost{ID: 7, Title: "Seven"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := c.Get("7")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Seven" {
		t.Errorf("Title = %q, want %q", got.Title, "Seven")
	}

	if _, err := c.Get("8"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMergesOnlyPatchedFields(t *testing.T) {
	c := setupCollection(t)

	if _, err := c.Append(testPost{ID: 1, Title: "T", Excerpt: "E", Status: "published"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	updated, err := c.Update("1", func(p *testPost) { p.Title = "T2" })
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "T2" {
		t.Errorf("Title = %q, want %q", updated.Title, "T2")
	}
	if updated.Excerpt != "E" || updated.Status != "published" || updated.ID != 1 {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	// The change must be durable, not just in the returned copy.
	got, err := c.Get("1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "T2" || got.Excerpt != "E" {
		t.Errorf("persisted record = %+v", got)
	}
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	c := setupCollection(t)

	_, err := c.Update("99", func(p *testPost) { p.Title = "x" })
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// An update must never become a silent insert.
	got, _ := c.All()
	if len(got) != 0 {
		t.Errorf("collection should stay empty, got %d records", len(got))
	}
}

func TestDeleteIsIdempotentlyNotFound(t *testing.T) {
	c := setupCollection(t)

	if _, err := c.Append(testPost{ID: 1, Title: "T"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	removed, err := c.Delete("1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if removed.ID != 1 {
		t.Errorf("removed ID = %d, want 1", removed.ID)
	}

	got, _ := c.All()
	if len(got) != 0 {
		t.Errorf("collection should be empty after delete, got %d", len(got))
	}

	if _, err := c.Delete("1"); err != ErrNotFound {
		t.Errorf("second delete should be ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	c := setupCollection(t)
	if err := os.WriteFile(c.Path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := c.All(); err == nil {
		t.Error("malformed collection file should surface a parse error")
	}
}

func TestDocumentLoadSeedsDefault(t *testing.T) {
	type settings struct {
		CompanyName string `json:"companyName"`
	}
	d := &Document[settings]{
		Path: filepath.Join(t.TempDir(), "settings.json"),
		Seed: settings{CompanyName: "UpRoof"},
	}

	got, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.CompanyName != "UpRoof" {
		t.Errorf("CompanyName = %q, want seed value", got.CompanyName)
	}
}

func TestDocumentUpdate(t *testing.T) {
	type settings struct {
		CompanyName  string `json:"companyName"`
		CompanyPhone string `json:"companyPhone"`
	}
	d := &Document[settings]{
		Path: filepath.Join(t.TempDir(), "settings.json"),
		Seed: settings{CompanyName: "UpRoof", CompanyPhone: "+1"},
	}

	updated, err := d.Update(func(s *settings) { s.CompanyPhone = "+371" })
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.CompanyName != "UpRoof" || updated.CompanyPhone != "+371" {
		t.Errorf("updated = %+v", updated)
	}

	got, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.CompanyPhone != "+371" {
		t.Errorf("persisted phone = %q, want +371", got.CompanyPhone)
	}
}

func TestWriteFileAtomicCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "file.json")
	if err := WriteFileAtomic(path, []byte("[]")); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("content = %q, want []", data)
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory should only contain the target file, got %d entries", len(entries))
	}
}
