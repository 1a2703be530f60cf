package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errNoSource = errors.New("no audio file given")

// resolveSource picks the audio file from the command line, then the
// config file, and finally asks on in.
func resolveSource(arg, configured string, in io.Reader, out io.Writer) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if configured != "" {
		return configured, nil
	}

	fmt.Fprint(out, "Path to the audio file: ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading audio file path: %w", err)
		}
		return "", errNoSource
	}

	path := strings.TrimSpace(scanner.Text())
	if path == "" {
		return "", errNoSource
	}

	return path, nil
}
