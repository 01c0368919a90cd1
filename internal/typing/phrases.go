package typing

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPhrases reads one phrase per line from path. Blank lines and lines
// starting with '#' are skipped.
func LoadPhrases(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening phrases %q: %w", path, err)
	}
	defer f.Close()

	var phrases []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\uFEFF"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading phrases %q: %w", path, err)
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("phrases %q: no phrases found", path)
	}
	return phrases, nil
}
