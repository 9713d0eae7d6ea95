//go:build windows

package serialization

import (
	"errors"
	"os"
	"syscall"
	"unsafe"
)

// mmapFile maps a file copy-on-write (Windows implementation).
func mmapFile(f *os.File, size int64) ([]byte, error) {
	handle, err := syscall.CreateFileMapping(
		syscall.Handle(f.Fd()),
		nil,
		syscall.PAGE_WRITECOPY,
		uint32(size>>32), //nolint:gosec // G115: high half of the mapping size
		uint32(size),     //nolint:gosec // G115: low half of the mapping size
		nil,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = syscall.CloseHandle(handle) }() // The view keeps the mapping alive

	addr, err := syscall.MapViewOfFile(
		handle,
		syscall.FILE_MAP_COPY,
		0,
		0,
		uintptr(size), //nolint:gosec // G115: int64-to-uintptr needed for syscall
	)
	if err != nil {
		return nil, err
	}

	//nolint:gosec,govet // G103: addr is a valid view of exactly size bytes from MapViewOfFile
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(size)), nil
}

// munmapFile unmaps a memory-mapped file (Windows implementation).
func munmapFile(data []byte) error {
	if len(data) == 0 {
		return errors.New("cannot unmap empty data")
	}
	return syscall.UnmapViewOfFile(uintptr(unsafe.Pointer(&data[0])))
}
