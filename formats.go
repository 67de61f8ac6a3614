package fileset

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// DefaultIndent is the conventional JSON indent width.
const DefaultIndent = 2

// AlterJSON reads the target file as JSON, hands the decoded document
// to fn, and writes the re-encoded result back. An absent target hands
// fn a nil document to build from scratch. indent sets the indent
// width; zero or negative emits compact output. A parse failure or fn
// error aborts before anything is written, leaving the file untouched.
func (s *Set) AlterJSON(fn func(doc interface{}) (interface{}, error), indent int) error {
	var doc interface{}
	data, err := os.ReadFile(s.pattern)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fn builds the document from nil
	case err != nil:
		return err
	default:
		if err := sonic.Unmarshal(data, &doc); err != nil {
			return err
		}
	}

	out, err := fn(doc)
	if err != nil {
		return err
	}

	encoded, err := encodeJSON(out, indent)
	if err != nil {
		return err
	}
	return s.Write(string(encoded))
}

// AlterYAML reads the target file as YAML, hands the decoded document
// to fn, and writes the re-encoded result back. An absent target hands
// fn a nil document. Errors abort before anything is written.
func (s *Set) AlterYAML(fn func(doc interface{}) (interface{}, error)) error {
	var doc interface{}
	data, err := os.ReadFile(s.pattern)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
	}

	out, err := fn(doc)
	if err != nil {
		return err
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	return s.Write(string(encoded))
}

// AlterTOML reads the target file as TOML, hands the decoded table to
// fn, and writes the re-encoded result back. TOML documents are tables
// at the top level, so fn works with a map rather than a bare value; an
// absent target hands fn a nil map. Errors abort before anything is
// written.
func (s *Set) AlterTOML(fn func(doc map[string]interface{}) (map[string]interface{}, error)) error {
	var doc map[string]interface{}
	data, err := os.ReadFile(s.pattern)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return err
		}
	}

	out, err := fn(doc)
	if err != nil {
		return err
	}

	encoded, err := toml.Marshal(out)
	if err != nil {
		return err
	}
	return s.Write(string(encoded))
}

func encodeJSON(v interface{}, indent int) ([]byte, error) {
	if indent <= 0 {
		return sonic.Marshal(v)
	}
	return sonic.MarshalIndent(v, "", strings.Repeat(" ", indent))
}
