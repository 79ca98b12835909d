// internal/record/region_test.go
package record

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileRegion_MissingFileIsInvalid(t *testing.T) {
	region, err := NewFileRegion(filepath.Join(t.TempDir(), "rtc.bin"))
	if err != nil {
		t.Fatalf("NewFileRegion() err=%v", err)
	}

	r, err := Open(region)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if r.Valid() {
		t.Fatalf("missing file must read as invalid")
	}
}

func TestFileRegion_CommitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtc.bin")
	region, err := NewFileRegion(path)
	if err != nil {
		t.Fatalf("NewFileRegion() err=%v", err)
	}

	r, err := Open(region)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	populate(r)
	if err := r.Commit(); err != nil {
		t.Fatalf("Commit() err=%v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() != Size {
		t.Fatalf("file size: got=%d want=%d", info.Size(), Size)
	}

	again, err := Open(region)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if !again.Valid() || again.Channel() != 6 {
		t.Fatalf("reload mismatch: valid=%v channel=%d", again.Valid(), again.Channel())
	}
}

func TestFileRegion_WrongSizeIsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtc.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	region, _ := NewFileRegion(path)
	r, err := Open(region)
	if err != nil {
		t.Fatalf("Open() err=%v", err)
	}
	if r.Valid() {
		t.Fatalf("foreign layout must read as invalid")
	}
}

func TestFileRegion_UnreadableIsFatal(t *testing.T) {
	// a directory cannot be read as a region
	region, _ := NewFileRegion(t.TempDir())
	if _, err := Open(region); err == nil {
		t.Fatalf("expected error opening a directory as region")
	}
}

func TestNewFileRegion_EmptyPath(t *testing.T) {
	if _, err := NewFileRegion(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
