package partsvc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sir_venger/filepart/internal/models"
)

func TestCombine_NumericOrder(t *testing.T) {
	dir := t.TempDir()
	// Лексикографический порядок поставил бы part10 перед part9.
	for _, p := range []struct {
		idx  string
		data string
	}{
		{"10", "D"},
		{"1", "A"},
		{"9", "C"},
		{"2", "B"},
	} {
		writeFile(t, filepath.Join(dir, "data.bin.part"+p.idx), []byte(p.data))
	}

	var out bytes.Buffer
	outPath, err := newTestService(&out).Combine(context.Background(), filepath.Join(dir, "data.bin"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "ABCD" {
		t.Errorf("combined = %q, want ABCD", b)
	}
	if !strings.Contains(out.String(), "Combined into") {
		t.Errorf("no completion line in %q", out.String())
	}
}

func TestCombine_NoParts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "unrelated.txt"), []byte("x"))

	_, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), filepath.Join(dir, "nope.bin"))
	if !errors.Is(err, models.ErrNoParts) {
		t.Fatalf("want ErrNoParts, got %v", err)
	}

	// Выходной файл не должен появиться.
	if _, err := os.Stat(filepath.Join(dir, "nope.bin")); !os.IsNotExist(err) {
		t.Errorf("output file created despite missing parts")
	}
}

func TestCombine_UnreadableDirectory(t *testing.T) {
	_, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), filepath.Join(t.TempDir(), "missing", "data.bin"))
	if !errors.Is(err, models.ErrDirUnreadable) {
		t.Fatalf("want ErrDirUnreadable, got %v", err)
	}
}

func TestCombine_IgnoresForeignEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data.bin.part1"), []byte("keep"))
	writeFile(t, filepath.Join(dir, "data.bin.partx"), []byte("skip"))
	writeFile(t, filepath.Join(dir, "other.bin.part1"), []byte("skip"))
	writeFile(t, filepath.Join(dir, "data.bin.part1.bak"), []byte("skip"))

	outPath, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), filepath.Join(dir, "data.bin"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "keep" {
		t.Errorf("combined = %q, want %q", b, "keep")
	}
}

func TestCombine_GapsTolerated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data.bin.part1"), []byte("A"))
	writeFile(t, filepath.Join(dir, "data.bin.part5"), []byte("B"))

	outPath, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), filepath.Join(dir, "data.bin"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "AB" {
		t.Errorf("combined = %q, want AB", b)
	}
}

func TestCombine_OverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "data.bin")
	writeFile(t, base, []byte("old output that must go away"))
	writeFile(t, base+".part1", []byte("new"))

	outPath, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), base)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "new" {
		t.Errorf("combined = %q, want %q", b, "new")
	}
}

func TestCombine_KeepsParts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data.bin.part1"), []byte("A"))

	if _, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), filepath.Join(dir, "data.bin")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "data.bin.part1")); err != nil {
		t.Errorf("part deleted after combine: %v", err)
	}
}

func TestCombine_RelativeBaseName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data.bin.part1"), []byte("A"))

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	outPath, err := newTestService(&bytes.Buffer{}).Combine(context.Background(), "data.bin")
	if err != nil {
		t.Fatal(err)
	}
	if outPath != "data.bin" {
		t.Errorf("outPath = %q, want %q", outPath, "data.bin")
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "A" {
		t.Errorf("combined = %q", b)
	}
}
