package script

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// crtFileName is the NVRAM key holding the web GUI certificate: a base64
// gzipped tar of etc/cert.pem and etc/key.pem. Its value is device-packed,
// so the script recreates the PEM files and repacks them on the target
// instead of replaying the blob verbatim.
const crtFileName = "https_crt_file"

const crtTemplate = `
# Web GUI Certificate
echo '%s' > /etc/cert.pem

# Web GUI Private Key
echo '%s' > /etc/key.pem

# Tar Certificate & Key
nvram set https_crt_file="$(cd / && tar -czf - etc/*.pem | openssl enc -A -base64)"
`

// certificateBlock expands the https_crt_file payload into the echo/repack
// stanza above. It fails on any malformed payload; the caller decides
// whether that is fatal.
func certificateBlock(payload string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode https_crt_file: %w", err)
	}
	pems, err := extractPEMs(raw)
	if err != nil {
		return "", err
	}
	cert, ok := pems["etc/cert.pem"]
	if !ok {
		return "", fmt.Errorf("https_crt_file: missing etc/cert.pem")
	}
	key, ok := pems["etc/key.pem"]
	if !ok {
		return "", fmt.Errorf("https_crt_file: missing etc/key.pem")
	}
	return fmt.Sprintf(crtTemplate, strings.TrimSpace(cert), strings.TrimSpace(key)), nil
}

func extractPEMs(raw []byte) (map[string]string, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decompress https_crt_file: %w", err)
	}
	defer zr.Close()

	pems := make(map[string]string)
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read https_crt_file archive: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("read %s from https_crt_file: %w", hdr.Name, err)
		}
		pems[strings.TrimPrefix(hdr.Name, "./")] = string(data)
	}
	return pems, nil
}
