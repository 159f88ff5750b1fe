package main

import (
	"io"
	"os"
	"sync"
)

const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

// cappedLog is an append-only log file that drops its oldest bytes once it
// grows past maxLogSizeBytes, keeping the newest keepLogSizeBytes.
type cappedLog struct {
	mu   sync.Mutex
	file *os.File
	size int64
}

func openCappedLog(path string) (*cappedLog, error) {
	if err := ensureParentDir(path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	l := &cappedLog{file: file, size: info.Size()}
	if err := l.trim(); err != nil {
		file.Close()
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return nil, err
	}
	return l, nil
}

func (l *cappedLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, err := l.file.Write(p)
	l.size += int64(n)
	if err != nil {
		return n, err
	}
	return n, l.trim()
}

func (l *cappedLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// trim rewrites the file with its tail. The file offset is left at the end.
func (l *cappedLog) trim() error {
	if l.size <= maxLogSizeBytes {
		return nil
	}
	tail := make([]byte, keepLogSizeBytes)
	n, err := l.file.ReadAt(tail, l.size-keepLogSizeBytes)
	if err != nil && err != io.EOF {
		return err
	}
	tail = tail[:n]

	if err := l.file.Truncate(0); err != nil {
		return err
	}
	if _, err := l.file.WriteAt(tail, 0); err != nil {
		return err
	}
	l.size = int64(len(tail))
	_, err = l.file.Seek(l.size, io.SeekStart)
	return err
}
