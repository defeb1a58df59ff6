// Package flatfile reads and writes the song database as a flat,
// comma-delimited text file with one record per line:
//
//	title,itemCode,description,artist,album,price,
//
// Fields are not escaped, so a comma inside a field cannot be represented.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/songdb/catalog"
	"github.com/user/songdb/pkg/pricefmt"
)

// fieldCount is the number of data fields in a record line.
const fieldCount = 6

// MaxLineLength is the longest record line Read accepts, in bytes.
const MaxLineLength = 1 << 20

// ErrNotFound is returned by Load when the database file does not exist.
var ErrNotFound = errors.New("database file not found")

// Options controls how a database file is read.
type Options struct {
	// StopAtBlankLine ends reading at the first empty line instead of skipping it.
	StopAtBlankLine bool
}

// FormatLine serializes a song as one record line, including the trailing
// comma and newline.
func FormatLine(s catalog.Song) string {
	return strings.Join([]string{
		s.Title,
		s.ItemCode,
		s.Description,
		s.Artist,
		s.Album,
		pricefmt.Format(s.Price),
	}, ",") + ",\n"
}

// ParseLine parses one record line. Fields are trimmed of surrounding
// whitespace; anything after the sixth field is ignored.
func ParseLine(line string) (catalog.Song, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, ",")
	if len(parts) < fieldCount {
		return catalog.Song{}, &MalformedRecordError{
			Text:   line,
			Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(parts)),
		}
	}
	for i := range parts[:fieldCount] {
		parts[i] = strings.TrimSpace(parts[i])
	}

	price, err := pricefmt.Parse(parts[5])
	if err != nil {
		return catalog.Song{}, &MalformedRecordError{Text: line, Reason: err.Error()}
	}

	return catalog.Song{
		Title:       parts[0],
		ItemCode:    parts[1],
		Description: parts[2],
		Artist:      parts[3],
		Album:       parts[4],
		Price:       price,
	}, nil
}

// Read parses records from r.
func Read(r io.Reader, opts Options) ([]catalog.Song, error) {
	var songs []catalog.Song
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if opts.StopAtBlankLine {
				break
			}
			continue
		}
		s, err := ParseLine(line)
		if err != nil {
			var mre *MalformedRecordError
			if errors.As(err, &mre) {
				mre.Line = lineNo
			}
			return nil, err
		}
		songs = append(songs, s)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MalformedRecordError{
				Line:   lineNo + 1,
				Reason: fmt.Sprintf("line longer than %d bytes", MaxLineLength),
			}
		}
		return nil, fmt.Errorf("reading records: %w", err)
	}
	return songs, nil
}

// Load reads every record from the file at path.
func Load(path string, opts Options) ([]catalog.Song, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	songs, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return songs, nil
}

// Write serializes songs to w in the given order.
func Write(w io.Writer, songs []catalog.Song) error {
	bw := bufio.NewWriter(w)
	for _, s := range songs {
		if _, err := bw.WriteString(FormatLine(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// defaultPerm is the mode given to a database file that does not exist yet.
const defaultPerm fs.FileMode = 0o644

// Save rewrites the whole file at path with songs. The new content is written
// to a temporary file in the same directory and renamed over path, so readers
// see either the old file or the new one. A symlinked path is followed and
// the existing file's permissions are kept.
func Save(path string, songs []catalog.Song) error {
	target, perm, err := saveTarget(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if err := Write(tmp, songs); err != nil {
		_ = tmp.Close()
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// saveTarget resolves symlinks in path and returns the file to replace along
// with the permissions it should keep.
func saveTarget(path string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		// a dangling link is written through to its destination
		if dest, lerr := os.Readlink(path); lerr == nil {
			if !filepath.IsAbs(dest) {
				dest = filepath.Join(filepath.Dir(path), dest)
			}
			return dest, defaultPerm, nil
		}
		return path, defaultPerm, nil
	}
	if err != nil {
		return "", 0, err
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, info.Mode().Perm(), nil
}

// File is a database file on disk.
type File struct {
	Path    string
	Options Options
}

// Load reads the file's records.
func (f File) Load() ([]catalog.Song, error) {
	return Load(f.Path, f.Options)
}

// Save rewrites the file with songs.
func (f File) Save(songs []catalog.Song) error {
	return Save(f.Path, songs)
}

// Create writes an empty database at path.
func Create(path string) error {
	return Save(path, nil)
}
