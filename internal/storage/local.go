package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Uploads stream to disk in bounded chunks so the size limit is enforced
// without buffering the whole file.
const chunkSize = 8 * 1024

// ErrFileTooLarge is returned by SaveTemp when the running byte count
// exceeds the limit; the partial file has already been discarded.
var ErrFileTooLarge = errors.New("file exceeds maximum allowed size")

type Storage interface {
	SaveTemp(jobID, filename string, r io.Reader, limit int64) (string, int64, error)
	CreateJobDir(jobID string) (string, error)
	RemoveTemp(path string) error
	Ready() error
}

// localStorage keeps temp uploads and job outputs on the local filesystem.
// Temp files are prefixed with the job id and each job gets its own output
// directory, so concurrent jobs never share a path.
type localStorage struct {
	tempRoot   string
	outputRoot string
}

func NewLocalStorage(tempRoot, outputRoot string) (Storage, error) {
	for _, dir := range []string{tempRoot, outputRoot} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &localStorage{tempRoot: tempRoot, outputRoot: outputRoot}, nil
}

func (s *localStorage) SaveTemp(jobID, filename string, r io.Reader, limit int64) (string, int64, error) {
	path := filepath.Join(s.tempRoot, jobID+"_"+filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	var written int64
	buf := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			written += int64(n)
			if written > limit {
				f.Close()
				os.Remove(path)
				return "", 0, ErrFileTooLarge
			}
			if _, err := f.Write(buf[:n]); err != nil {
				f.Close()
				os.Remove(path)
				return "", 0, fmt.Errorf("failed to write temp file: %w", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			f.Close()
			os.Remove(path)
			return "", 0, fmt.Errorf("failed to read upload: %w", readErr)
		}
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to flush temp file: %w", err)
	}
	return path, written, nil
}

func (s *localStorage) CreateJobDir(jobID string) (string, error) {
	dir := filepath.Join(s.outputRoot, jobID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create job output directory: %w", err)
	}
	return dir, nil
}

func (s *localStorage) RemoveTemp(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *localStorage) Ready() error {
	for _, dir := range []string{s.tempRoot, s.outputRoot} {
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("storage root %s not accessible: %w", dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("storage root %s is not a directory", dir)
		}
	}
	return nil
}
