package runrecord

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

func sampleRecord() domain.BootstrapRecord {
	return domain.BootstrapRecord{
		Identifier: "pell-accepts",
		Root:       "/work/pell-accepts",
		VenvDir:    ".venv",
		StartedAt:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		EndedAt:    time.Date(2026, 8, 30, 10, 2, 0, 0, time.UTC),
		Steps: []domain.StepResult{
			{ID: domain.StepName, Title: "derive project identifier", Status: domain.StepOK},
			{ID: domain.StepVenvCreate, Title: "create virtual environment", Status: domain.StepOK},
		},
	}
}

func TestSaveRecord_WritesTimestampedJSON(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root)

	id, err := s.SaveRecord(sampleRecord())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "20260830T100000Z_pell-accepts" {
		t.Fatalf("id = %q", id)
	}

	path := filepath.Join(root, ".repoinit", "runs", id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read record: %v", err)
	}

	var got domain.BootstrapRecord
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("record is invalid JSON: %v", err)
	}
	if got.Identifier != "pell-accepts" || len(got.Steps) != 2 {
		t.Fatalf("record = %+v", got)
	}
}

func TestSaveRecord_AppendsIndex(t *testing.T) {
	root := t.TempDir()
	s := NewJSONStore(root, WithIndex(true))

	if _, err := s.SaveRecord(sampleRecord()); err != nil {
		t.Fatal(err)
	}
	rec := sampleRecord()
	rec.StartedAt = rec.StartedAt.Add(time.Minute)
	rec.FailedStep = domain.StepGitPush
	if _, err := s.SaveRecord(rec); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(root, ".repoinit", "runs", "index.jsonl"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("index lines = %d:\n%s", len(lines), b)
	}
	if !strings.Contains(lines[1], `"failed_step":"git.push"`) {
		t.Fatalf("second line missing failed step: %s", lines[1])
	}
}

func TestSaveRecord_ZeroStartFallsBackToNow(t *testing.T) {
	root := t.TempDir()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewJSONStore(root, WithNow(func() time.Time { return fixed }))

	rec := sampleRecord()
	rec.StartedAt = time.Time{}

	id, err := s.SaveRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(id, "20260102T030405Z_") {
		t.Fatalf("id = %q", id)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pell-accepts", "pell-accepts"},
		{"My Repo", "my-repo"},
		{"répö!", "rp"},
		{"", ""},
	}
	for _, c := range cases {
		if got := slugify(c.in); got != c.want {
			t.Errorf("slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
