package glmatch

import (
	"bytes"
	"compress/gzip"
	"io/ioutil"
	"strings"
	"testing"
)

const caseTable = "sample_id,recipient_gl,donor_gl\nS1,HLA-A*01:01,HLA-A*02:01\n"

func TestMaybeDecompressGzip(t *testing.T) {
	buf := &bytes.Buffer{}
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write([]byte(caseTable)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	rdr, err := MaybeDecompress(buf)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ioutil.ReadAll(rdr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != caseTable {
		t.Fatalf("read %q, expected the original table", got)
	}
}

func TestMaybeDecompressPlaintext(t *testing.T) {
	rdr, err := MaybeDecompress(strings.NewReader(caseTable))
	if err != nil {
		t.Fatal(err)
	}

	got, err := ioutil.ReadAll(rdr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != caseTable {
		t.Fatalf("read %q, expected passthrough of the original table", got)
	}
}

func TestSniffCompression(t *testing.T) {
	for _, v := range []struct {
		buff []byte
		want compression
	}{
		{[]byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00}, compressionGzip},
		{[]byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0x00}, compressionZip},
		{[]byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, compressionXZ},
		{[]byte{0x42, 0x5a, 0x68, 0x00, 0x00, 0x00}, compressionBZip2},
		{[]byte("sample"), compressionNone},
		{[]byte("s"), compressionNone},
	} {
		if got := sniffCompression(v.buff); got != v.want {
			t.Errorf("sniffCompression(% x): got %d, expected %d", v.buff, got, v.want)
		}
	}
}

func TestDetermineDelimiter(t *testing.T) {
	if d := DetermineDelimiter(strings.NewReader(caseTable)); d != ',' {
		t.Errorf("detected %q, expected ','", d)
	}

	tabbed := strings.ReplaceAll(caseTable, ",", "\t")
	if d := DetermineDelimiter(strings.NewReader(tabbed)); d != '\t' {
		t.Errorf("detected %q, expected tab", d)
	}
}
