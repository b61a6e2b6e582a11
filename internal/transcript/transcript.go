package transcript

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
)

// Transcript lines carry full tool outputs and can be large.
const maxLineBytes = 8 << 20

// Read loads a chat transcript from a JSONL file, one JSON object per line.
// Blank lines and lines that fail to parse are skipped. A missing or
// unreadable file yields nil: transcripts are best-effort and never fail
// the hook.
func Read(path string) []map[string]interface{} {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var chat []map[string]interface{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		chat = append(chat, entry)
	}

	return chat
}
