package glmatch

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type compression byte

const (
	compressionNone compression = iota
	compressionGzip
	compressionZip
	compressionXZ
	compressionZ
	compressionBZip2
)

// Magic byte signatures from https://stackoverflow.com/a/19127748/199475
var compressionSigs = map[compression][]byte{
	compressionGzip:  {0x1f, 0x8b, 0x08},
	compressionZip:   {0x50, 0x4b, 0x03, 0x04},
	compressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	compressionZ:     {0x1f, 0x9d},
	compressionBZip2: {0x42, 0x5a, 0x68},
}

// MaybeDecompress sniffs the leading bytes of r against known compression
// signatures and, on a hit, wraps r in the matching decompressor. Sniffing
// uses a peek rather than a seek so that unseekable streams (gs:// readers,
// pipes) work. An unrecognized signature is assumed to be plain text.
func MaybeDecompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buff, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch sniffCompression(buff) {
	case compressionGzip:
		return gzip.NewReader(br)
	case compressionZip:
		return zipstream.NewReader(br), nil
	case compressionBZip2:
		return bzip2.NewReader(br), nil
	case compressionXZ:
		return xz.NewReader(br, 0)
	case compressionZ:
		return zlib.NewReader(br)
	}

	return br, nil
}

func sniffCompression(buff []byte) compression {
Outer:
	for c, sig := range compressionSigs {
		if len(buff) < len(sig) {
			continue
		}
		for i := range sig {
			if buff[i] != sig[i] {
				continue Outer
			}
		}
		return c
	}

	return compressionNone
}
