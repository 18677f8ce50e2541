package extractor

import (
	"errors"
	"fmt"

	"github.com/seitarof/tado-env/internal/parser"
)

// ErrMissingKey matches every *MissingKeyError.
var ErrMissingKey = errors.New("missing key")

// MissingKeyError names the first required path absent from a mapping.
type MissingKeyError struct {
	Path string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key: '%s'", e.Path)
}

func (e *MissingKeyError) Is(target error) bool { return target == ErrMissingKey }

// Extractor projects a flat mapping onto a ClientInfo.
type Extractor interface {
	Extract(m parser.FlatMapping) (*ClientInfo, error)
}

// Field binds one required dotted path to the ClientInfo field it fills.
type Field struct {
	Path string
	Set  func(info *ClientInfo, value string)
}

type extractorImpl struct {
	fields []Field
}

// New builds an extractor that looks fields up in the given order.
func New(fields ...Field) Extractor {
	return &extractorImpl{fields: fields}
}

// Extract fails on the first missing path. Values of either literal kind
// are accepted and stringified, so a boolean can fill a string field.
func (x *extractorImpl) Extract(m parser.FlatMapping) (*ClientInfo, error) {
	var info ClientInfo
	for _, f := range x.fields {
		lit, ok := m[f.Path]
		if !ok {
			return nil, &MissingKeyError{Path: f.Path}
		}
		f.Set(&info, lit.String())
	}
	return &info, nil
}
