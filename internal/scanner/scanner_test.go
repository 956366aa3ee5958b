package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	res, err := Scan(dir, DefaultTracked(), 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.TotalFiles != 0 {
		t.Errorf("TotalFiles = %d, want 0", res.TotalFiles)
	}
	if res.TotalBytes != 0 {
		t.Errorf("TotalBytes = %d, want 0", res.TotalBytes)
	}
	for ext, b := range res.Buckets {
		if b.Count != 0 || b.TotalBytes != 0 {
			t.Errorf("bucket %s not zero: %+v", ext, b)
		}
	}
	if len(res.LargestFiles) != 0 {
		t.Errorf("LargestFiles = %v, want empty", res.LargestFiles)
	}
	if res.FilesDenominator() != 1 {
		t.Errorf("FilesDenominator = %d, want clamp to 1", res.FilesDenominator())
	}
	if res.BytesDenominator() != 1 {
		t.Errorf("BytesDenominator = %d, want clamp to 1", res.BytesDenominator())
	}
}

func TestScanCreatesMissingRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not_yet", "nested")

	res, err := Scan(dir, DefaultTracked(), 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.TotalFiles != 0 {
		t.Errorf("TotalFiles = %d, want 0 for fresh directory", res.TotalFiles)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created as a directory, err=%v", dir, err)
	}
	if len(res.Buckets) != len(DefaultTracked()) {
		t.Errorf("Buckets = %d entries, want one per tracked extension", len(res.Buckets))
	}
}

func TestScanCaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", 10)
	writeFile(t, dir, "b.TXT", 20)
	writeFile(t, dir, "c.md", 5)

	tracked := []TrackedExtension{{".txt", "Text"}, {".md", "Markdown"}}
	res, err := Scan(dir, tracked, 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := res.Buckets[".txt"]; got.Count != 2 || got.TotalBytes != 30 {
		t.Errorf(".txt bucket = %+v, want count 2 / 30 bytes", got)
	}
	if got := res.Buckets[".md"]; got.Count != 1 || got.TotalBytes != 5 {
		t.Errorf(".md bucket = %+v, want count 1 / 5 bytes", got)
	}
	if res.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", res.TotalFiles)
	}
	if res.TotalBytes != 35 {
		t.Errorf("TotalBytes = %d, want 35", res.TotalBytes)
	}
}

func TestScanUntrackedFilesCountTowardTotalsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", 10)
	writeFile(t, dir, "skip.xyz", 90)
	writeFile(t, dir, "noext", 7)

	tracked := []TrackedExtension{{".txt", "Text"}}
	res, err := Scan(dir, tracked, 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if res.TotalFiles != 3 {
		t.Errorf("TotalFiles = %d, want 3", res.TotalFiles)
	}
	if res.TotalBytes != 107 {
		t.Errorf("TotalBytes = %d, want 107", res.TotalBytes)
	}
	if got := res.Buckets[".txt"]; got.Count != 1 || got.TotalBytes != 10 {
		t.Errorf(".txt bucket = %+v, want count 1 / 10 bytes", got)
	}
}

func TestScanRecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "top.txt", 1)
	writeFile(t, dir, filepath.Join("a", "mid.txt"), 2)
	writeFile(t, dir, filepath.Join("a", "b", "deep.txt"), 3)

	res, err := Scan(dir, []TrackedExtension{{".txt", "Text"}}, 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if got := res.Buckets[".txt"]; got.Count != 3 || got.TotalBytes != 6 {
		t.Errorf(".txt bucket = %+v, want count 3 / 6 bytes", got)
	}
}

func TestScanLargestFilesRanking(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "small.bin", 100)
	writeFile(t, dir, "big.bin", 500)
	writeFile(t, dir, "mid.bin", 300)

	res, err := Scan(dir, DefaultTracked(), 2)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.LargestFiles) != 2 {
		t.Fatalf("LargestFiles = %d entries, want 2", len(res.LargestFiles))
	}
	if res.LargestFiles[0].SizeBytes != 500 || res.LargestFiles[1].SizeBytes != 300 {
		t.Errorf("ranking = [%d, %d], want [500, 300]",
			res.LargestFiles[0].SizeBytes, res.LargestFiles[1].SizeBytes)
	}
	if res.LargestFiles[0].Name != "big.bin" {
		t.Errorf("top file = %q, want big.bin", res.LargestFiles[0].Name)
	}
}

func TestScanLargestFilesTieKeepsWalkOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "aaa.bin", 50)
	writeFile(t, dir, "bbb.bin", 50)
	writeFile(t, dir, "ccc.bin", 99)

	res, err := Scan(dir, DefaultTracked(), 10)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []string{"ccc.bin", "aaa.bin", "bbb.bin"}
	if len(res.LargestFiles) != len(want) {
		t.Fatalf("LargestFiles = %d entries, want %d", len(res.LargestFiles), len(want))
	}
	for i, name := range want {
		if res.LargestFiles[i].Name != name {
			t.Errorf("rank %d = %q, want %q (stable tie order)", i+1, res.LargestFiles[i].Name, name)
		}
	}
}

func TestScanDropsUnreadableSubtree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permission bits are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	writeFile(t, dir, "visible.txt", 10)
	writeFile(t, dir, filepath.Join("locked", "hidden.txt"), 20)

	locked := filepath.Join(dir, "locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	res, err := Scan(dir, []TrackedExtension{{".txt", "Text"}}, 10)
	if err != nil {
		t.Fatalf("Scan must succeed past an unreadable subtree, got %v", err)
	}
	if res.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want 1 with the unreadable subtree dropped", res.TotalFiles)
	}
	if got := res.Buckets[".txt"]; got.Count != 1 || got.TotalBytes != 10 {
		t.Errorf(".txt bucket = %+v, want only the readable file counted", got)
	}
	if len(res.LargestFiles) != 1 || res.LargestFiles[0].Name != "visible.txt" {
		t.Errorf("LargestFiles = %v, want just visible.txt", res.LargestFiles)
	}
}

func TestScanZeroLimit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", 10)

	res, err := Scan(dir, DefaultTracked(), 0)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(res.LargestFiles) != 0 {
		t.Errorf("LargestFiles = %v, want empty with limit 0", res.LargestFiles)
	}
	if res.TotalFiles != 1 {
		t.Errorf("TotalFiles = %d, want counting unaffected by limit", res.TotalFiles)
	}
}
