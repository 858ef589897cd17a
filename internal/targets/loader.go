package targets

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a newline-delimited address list. Lines are trimmed,
// blank lines are skipped and input order is preserved. An empty
// list is valid; the caller decides whether to warn about it.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("address list open failed: %w", err)
	}
	defer file.Close()

	var addresses []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("address list read failed: %w", err)
	}

	return addresses, nil
}
