package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"

	nbgen "github.com/alnah/go-nbgen"
	"github.com/alnah/go-nbgen/internal/yamlutil"
)

// recordFile is the top-level shape of a YAML record file:
//
//	records:
//	  - kind: text
//	    unit: "1.1"
//	    body: A point about the topic
//	    source: www.some.source
type recordFile struct {
	Records []nbgen.Record `yaml:"records"`
}

// YAMLSource reads records from a YAML file. Files ending in ".xz" are
// decompressed on the fly.
type YAMLSource struct {
	Path string
}

// NewYAMLSource returns a YAMLSource reading path.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

// Read decodes the file strictly; unknown record fields are rejected.
func (s *YAMLSource) Read(ctx context.Context) ([]nbgen.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadRecords, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(s.Path), ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadRecords, s.Path, err)
		}
		r = xr
	}

	var file recordFile
	if err := yamlutil.ReadStrict(r, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadRecords, s.Path, err)
	}
	return file.Records, nil
}
