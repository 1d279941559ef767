package audio

import (
	"errors"
	"io"
)

// PCMStream 内存中的 PCM 数据流
// 实现 io.ReadSeeker 和 Length()，可用于 audio.NewPlayer 与 audio.NewInfiniteLoop
type PCMStream struct {
	data   []byte // 16-bit 小端双声道 PCM
	offset int64  // 当前读取位置
}

// NewPCMStream 包装 PCM 数据
func NewPCMStream(pcm []byte) *PCMStream {
	return &PCMStream{data: pcm}
}

// Read implements io.Reader.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, errors.New("invalid whence")
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length 返回 PCM 数据总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}
