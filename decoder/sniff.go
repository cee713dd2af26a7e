// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"bytes"
	"path/filepath"
	"strings"
)

const sniffLen = 12

var extensions = map[string]string{
	".wav":  "wav",
	".wave": "wav",
	".mp3":  "mp3",
	".ogg":  "vorbis",
	".oga":  "vorbis",
	".aif":  "aiff",
	".aiff": "aiff",
	".aifc": "aiff",
}

// sniff names the container from its leading bytes, or returns "".
func sniff(head []byte) string {
	switch {
	case len(head) >= 12 && bytes.HasPrefix(head, []byte("RIFF")) && bytes.Equal(head[8:12], []byte("WAVE")):
		return "wav"
	case bytes.HasPrefix(head, []byte("OggS")):
		return "vorbis"
	case len(head) >= 12 && bytes.HasPrefix(head, []byte("FORM")) &&
		(bytes.Equal(head[8:12], []byte("AIFF")) || bytes.Equal(head[8:12], []byte("AIFC"))):
		return "aiff"
	case bytes.HasPrefix(head, []byte("ID3")):
		return "mp3"
	case len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0:
		return "mp3"
	}

	return ""
}

func formatFromExt(path string) string {
	return extensions[strings.ToLower(filepath.Ext(path))]
}
