// Package glmatch holds the file-opening helpers shared by the cmd tools:
// case tables may live on local disk or in Google Storage, may be compressed,
// and may be comma- or tab-delimited; the helpers here normalize all of that
// before the table reaches the casetable parser.
package glmatch

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// OpenCaseFile opens path for sequential reading. A gs:// URL is opened
// through the client (which must be non-nil for such paths); anything else is
// treated as a local file.
func OpenCaseFile(path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: no Google Storage client configured", path)
		}

		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, fmt.Errorf("expected gs://bucket/object but got %s", path)
		}

		rdr, err := client.Bucket(pathParts[0]).Object(pathParts[1]).NewReader(context.Background())
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
		}

		return rdr, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// ReadCaseTable slurps a case table from a local path or a gs:// URL,
// transparently decompressing it, and reports the delimiter its rows appear
// to use. Case tables are small enough that reading them whole is the
// simplest way to make delimiter detection work on unseekable gs:// streams.
func ReadCaseTable(path string, client *storage.Client) ([]byte, rune, error) {
	raw, err := OpenCaseFile(path, client)
	if err != nil {
		return nil, 0, err
	}
	defer raw.Close()

	rdr, err := MaybeDecompress(raw)
	if err != nil {
		return nil, 0, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	fileBytes, err := ioutil.ReadAll(rdr)
	if err != nil {
		return nil, 0, pfx.Err(err)
	}

	delimiter := DetermineDelimiter(strings.NewReader(string(fileBytes)))

	return fileBytes, delimiter, nil
}
