// Package corpus streams alpino_ds documents out of treebank containers
// and drives parallel extraction runs over them.
package corpus

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pebbe/compactcorpus"
)

// Sample is one raw alpino_ds document read from a corpus.
type Sample struct {
	Name string
	Data []byte
}

// Walk streams the samples of a corpus to fn in a deterministic order. The
// path may be a directory (recursive, *.xml files in lexicographic order),
// a single .xml or .xml.gz file, a compact corpus (.data.dz or .index), a
// DBXML .dact file, or a .zip, .tar, .tar.gz or .tgz archive of xml files.
// A callback error aborts the walk.
func Walk(path string, fn func(Sample) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat corpus: %w", err)
	}
	if info.IsDir() {
		return walkDir(path, fn)
	}

	switch {
	case strings.HasSuffix(path, ".dact"):
		return walkDact(path, fn)
	case strings.HasSuffix(path, ".index") || strings.HasSuffix(path, ".data.dz"):
		return walkCompact(path, fn)
	case strings.HasSuffix(path, ".xml.gz"):
		return walkGzip(path, fn)
	case strings.HasSuffix(path, ".xml"):
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read corpus: %w", err)
		}
		return fn(Sample{Name: filepath.Base(path), Data: data})
	case strings.HasSuffix(path, ".tar"):
		fp, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer fp.Close()
		return walkTar(fp, fn)
	case strings.HasSuffix(path, ".tar.gz") || strings.HasSuffix(path, ".tgz"):
		fp, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open corpus: %w", err)
		}
		defer fp.Close()
		zr, err := gzip.NewReader(fp)
		if err != nil {
			return fmt.Errorf("read gzip: %w", err)
		}
		defer zr.Close()
		return walkTar(zr, fn)
	case strings.HasSuffix(path, ".zip"):
		return walkZip(path, fn)
	default:
		return fmt.Errorf("unknown corpus type for %s", path)
	}
}

// WalkList streams the corpora named on r, one path per line, through
// Walk. Blank lines are skipped.
func WalkList(r io.Reader, fn func(Sample) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}
		if err := Walk(path, fn); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func walkDir(root string, fn func(Sample) error) error {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".xml") {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk corpus directory: %w", err)
	}
	sort.Strings(paths)

	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		name, err := filepath.Rel(root, p)
		if err != nil {
			name = p
		}
		if err := fn(Sample{Name: filepath.ToSlash(name), Data: data}); err != nil {
			return err
		}
	}
	return nil
}

func walkCompact(path string, fn func(Sample) error) error {
	corp, err := compactcorpus.Open(path)
	if err != nil {
		return fmt.Errorf("open compact corpus: %w", err)
	}
	it, err := corp.NewRange()
	if err != nil {
		return fmt.Errorf("read compact corpus: %w", err)
	}
	for it.HasNext() {
		name, data := it.Next()
		if err := fn(Sample{Name: name, Data: data}); err != nil {
			return err
		}
	}
	return nil
}

func walkGzip(path string, fn func(Sample) error) error {
	fp, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer fp.Close()

	zr, err := gzip.NewReader(fp)
	if err != nil {
		return fmt.Errorf("read gzip: %w", err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("read gzip: %w", err)
	}
	if err := zr.Close(); err != nil {
		return fmt.Errorf("read gzip: %w", err)
	}
	return fn(Sample{Name: strings.TrimSuffix(filepath.Base(path), ".gz"), Data: data})
}

func walkTar(r io.Reader, fn func(Sample) error) error {
	tr := tar.NewReader(r)
	for {
		h, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read tar: %w", err)
		}
		if !strings.HasSuffix(h.Name, ".xml") {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return fmt.Errorf("read tar entry %s: %w", h.Name, err)
		}
		if err := fn(Sample{Name: h.Name, Data: data}); err != nil {
			return err
		}
	}
}

func walkZip(path string, fn func(Sample) error) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		fp, err := f.Open()
		if err != nil {
			return fmt.Errorf("read zip entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(fp)
		fp.Close()
		if err != nil {
			return fmt.Errorf("read zip entry %s: %w", f.Name, err)
		}
		if err := fn(Sample{Name: f.Name, Data: data}); err != nil {
			return err
		}
	}
	return nil
}
