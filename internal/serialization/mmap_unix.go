//go:build unix

package serialization

import (
	"os"
	"syscall"
)

// mmapFile maps a file privately: pages are readable and writable, and
// writes are copy-on-write (Unix implementation).
func mmapFile(f *os.File, size int64) ([]byte, error) {
	return syscall.Mmap(
		int(f.Fd()), //nolint:gosec // G115: file descriptor fits in int
		0,
		int(size), //nolint:gosec // G115: file size validated by caller
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_PRIVATE,
	)
}

// munmapFile unmaps a memory-mapped file (Unix implementation).
func munmapFile(data []byte) error {
	return syscall.Munmap(data)
}
