package pixfit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DeriveFilename builds the output filename for a processed image: the
// original name minus its last extension (if any), plus the canonical
// extension of the target format.
func DeriveFilename(name string, format Format) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = name
	}
	return base + "." + format.Extension()
}

// NamedBlob is a (bytes, filename) pair handed to a sink.
type NamedBlob struct {
	Name string
	Data []byte
}

// BlobSink saves one named byte blob — for example by triggering an OS or
// browser download. Implementations live outside this package; the
// pipeline only produces the pairs.
type BlobSink interface {
	SaveBlob(name string, data []byte) error
}

// ArchiveSink packages several named byte blobs into a single archive and
// saves it under the archive name. Implementations live outside this
// package.
type ArchiveSink interface {
	SaveArchive(name string, blobs []NamedBlob) error
}

// Deliver hands each processed image to sink in result order, stopping at
// the first sink error.
func Deliver(sink BlobSink, results []ProcessedImage) error {
	for _, r := range results {
		if err := sink.SaveBlob(r.Name, r.Data); err != nil {
			return fmt.Errorf("pixfit: deliver %q: %w", r.Name, err)
		}
	}
	return nil
}

// DeliverArchive packages all processed images into one archive named
// archiveName and hands it to sink.
func DeliverArchive(sink ArchiveSink, archiveName string, results []ProcessedImage) error {
	blobs := make([]NamedBlob, len(results))
	for i, r := range results {
		blobs[i] = NamedBlob{Name: r.Name, Data: r.Data}
	}
	if err := sink.SaveArchive(archiveName, blobs); err != nil {
		return fmt.Errorf("pixfit: deliver archive %q: %w", archiveName, err)
	}
	return nil
}
