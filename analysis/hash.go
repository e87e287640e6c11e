// SPDX-License-Identifier: EPL-2.0

package analysis

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

const hashChunkSize = 8192

// HashFile returns the hex-encoded MD5 digest of the file at path,
// read in fixed-size chunks so arbitrarily large files stay cheap.
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	defer file.Close()

	digest := md5.New()
	buf := make([]byte, hashChunkSize)
	for {
		n, err := file.Read(buf)
		if n > 0 {
			digest.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w", err)
		}
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
