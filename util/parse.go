package util

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ReadFileLines reads a file and returns its lines.
func ReadFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// ParseUint64 parses a decimal counter field, returning (0, false) when the
// field is not a plain number.
func ParseUint64(s string) (uint64, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseCPUList parses a comma-separated list of CPU numbers and a-b ranges,
// e.g. "0,1,5-7", into a sorted, deduplicated index list.
func ParseCPUList(s string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("empty entry in CPU list %q", s)
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			a, err1 := strconv.Atoi(strings.TrimSpace(lo))
			b, err2 := strconv.Atoi(strings.TrimSpace(hi))
			if err1 != nil || err2 != nil || a < 0 || b < a {
				return nil, fmt.Errorf("bad CPU range %q", part)
			}
			for i := a; i <= b; i++ {
				seen[i] = true
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad CPU number %q", part)
		}
		seen[n] = true
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

// ParseInterval parses a positive number of seconds (fractions allowed)
// into a duration.
func ParseInterval(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("interval must be a number of seconds, got %q", s)
	}
	if f <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %v", f)
	}
	return time.Duration(f * float64(time.Second)), nil
}
