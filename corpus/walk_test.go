package corpus

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, path string) []Sample {
	t.Helper()
	var got []Sample
	if err := Walk(path, func(s Sample) error {
		got = append(got, s)
		return nil
	}); err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	return got
}

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func tarred(t *testing.T, entries []Sample) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, e := range entries {
		hdr := &tar.Header{Name: e.Name, Mode: 0o644, Size: int64(len(e.Data))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write(e.Data); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestWalkDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.xml"), "<b/>")
	writeFile(t, filepath.Join(dir, "C.XML"), "<c/>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "skip me")
	writeFile(t, filepath.Join(dir, "sub", "a.xml"), "<a/>")

	got := collect(t, dir)

	want := []Sample{
		{Name: "C.XML", Data: []byte("<c/>")},
		{Name: "b.xml", Data: []byte("<b/>")},
		{Name: "sub/a.xml", Data: []byte("<a/>")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml")
	writeFile(t, path, "<doc/>")

	got := collect(t, path)

	want := []Sample{{Name: "doc.xml", Data: []byte("<doc/>")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkGzippedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.xml.gz")
	writeFile(t, path, string(gzipped(t, []byte("<doc/>"))))

	got := collect(t, path)

	want := []Sample{{Name: "doc.xml", Data: []byte("<doc/>")}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkTarArchives(t *testing.T) {
	entries := []Sample{
		{Name: "one.xml", Data: []byte("<one/>")},
		{Name: "readme.md", Data: []byte("not xml")},
		{Name: "two.xml", Data: []byte("<two/>")},
	}
	want := []Sample{entries[0], entries[2]}

	plain := tarred(t, entries)
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"corpus.tar", plain},
		{"corpus.tar.gz", gzipped(t, plain)},
		{"corpus.tgz", gzipped(t, plain)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.name)
			writeFile(t, path, string(tc.data))

			got := collect(t, path)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Walk() = %v, want %v", got, want)
			}
		})
	}
}

func TestWalkZipArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range []Sample{
		{Name: "one.xml", Data: []byte("<one/>")},
		{Name: "skip.txt", Data: []byte("not xml")},
		{Name: "two.xml", Data: []byte("<two/>")},
	} {
		w, err := zw.Create(e.Name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(e.Data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "corpus.zip")
	writeFile(t, path, buf.String())

	got := collect(t, path)

	want := []Sample{
		{Name: "one.xml", Data: []byte("<one/>")},
		{Name: "two.xml", Data: []byte("<two/>")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.bin")
	writeFile(t, path, "???")

	err := Walk(path, func(Sample) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "unknown corpus type") {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestWalkMissingPath(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "nope"), func(Sample) error { return nil })
	if err == nil {
		t.Error("Walk() expected error for missing path")
	}
}

func TestWalkCallbackAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.xml"), "<a/>")
	writeFile(t, filepath.Join(dir, "b.xml"), "<b/>")

	boom := errors.New("boom")
	var seen int
	err := Walk(dir, func(Sample) error {
		seen++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("Walk() error = %v, want boom", err)
	}
	if seen != 1 {
		t.Errorf("callback ran %d times, want 1", seen)
	}
}

func TestWalkList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.xml"), "<a/>")
	writeFile(t, filepath.Join(dir, "b.xml"), "<b/>")

	list := strings.NewReader(
		filepath.Join(dir, "b.xml") + "\n\n" + filepath.Join(dir, "a.xml") + "\n")

	var names []string
	if err := WalkList(list, func(s Sample) error {
		names = append(names, s.Name)
		return nil
	}); err != nil {
		t.Fatalf("WalkList() error: %v", err)
	}

	want := []string{"b.xml", "a.xml"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("WalkList() names = %v, want %v", names, want)
	}
}
