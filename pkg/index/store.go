package index

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/dotman/pkg/errors"
	"github.com/arthur-debert/dotman/pkg/logging"
	"github.com/arthur-debert/dotman/pkg/paths"
)

// Load reads the index file under configDir in lenient mode: a
// missing file yields an empty index, and blank lines, comment lines
// and lines with fewer than two tab-separated fields are skipped.
// Leniency keeps hand-edited index files loadable.
func Load(configDir string) (*Index, error) {
	return load(configDir, false)
}

// LoadStrict reads the index like Load but fails on malformed lines.
// Intended for tooling that must detect corruption; the engine itself
// always loads leniently.
func LoadStrict(configDir string) (*Index, error) {
	return load(configDir, true)
}

func load(configDir string, strict bool) (*Index, error) {
	logger := logging.GetLogger("index")
	path := paths.IndexPath(configDir)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("Index file absent, starting empty")
			return New(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrIndexReadFailed, "failed to open index %s", path)
	}
	defer func() { _ = file.Close() }()

	idx := New()
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			if strict {
				return nil, errors.Newf(errors.ErrIndexReadFailed,
					"malformed index line %d in %s", lineNo, path)
			}
			logger.Warn().Int("line", lineNo).Msg("Skipping malformed index line")
			continue
		}

		if err := idx.Append(Record{Original: fields[0], Repo: fields[1]}); err != nil {
			if strict {
				return nil, errors.Wrapf(err, errors.ErrIndexReadFailed,
					"duplicate index line %d in %s", lineNo, path)
			}
			logger.Warn().Int("line", lineNo).Str("path", fields[0]).Msg("Skipping duplicate index line")
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexReadFailed, "failed to read index %s", path)
	}

	logger.Debug().Int("records", idx.Len()).Str("path", path).Msg("Index loaded")
	return idx, nil
}

// Save serializes the full index, replacing index.txt atomically via
// a temp file in the same directory followed by a rename. A crashed
// write never leaves a truncated index behind.
func Save(configDir string, idx *Index) error {
	logger := logging.GetLogger("index")
	path := paths.IndexPath(configDir)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to create %s", configDir)
	}

	tmp, err := os.CreateTemp(configDir, paths.IndexFileName+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to create temp index in %s", configDir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	w := bufio.NewWriter(tmp)
	for _, r := range idx.Records() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Original, r.Repo); err != nil {
			_ = tmp.Close()
			return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to write index record")
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to flush index")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to close temp index")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, errors.ErrIndexWriteFailed, "failed to replace index %s", path)
	}

	logger.Debug().Int("records", idx.Len()).Str("path", path).Msg("Index saved")
	return nil
}
