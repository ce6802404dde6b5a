//go:build cgo

package corpus

import (
	"fmt"

	"github.com/pebbe/dbxml"
)

func walkDact(path string, fn func(Sample) error) error {
	db, err := dbxml.OpenRead(path)
	if err != nil {
		return fmt.Errorf("open dact: %w", err)
	}
	defer db.Close()

	docs, err := db.All()
	if err != nil {
		return fmt.Errorf("read dact: %w", err)
	}
	for docs.Next() {
		if err := fn(Sample{Name: docs.Name(), Data: []byte(docs.Content())}); err != nil {
			return err
		}
	}
	if err := docs.Error(); err != nil {
		return fmt.Errorf("read dact: %w", err)
	}
	return nil
}
