package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"quizapp/internal/ui/plain"
)

// promptYesNo asks a yes/no question; an empty reply picks the default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, err
		}
		if strings.TrimSpace(line) == "" {
			return defaultYes, nil
		}
		if yes, ok := plain.ParseYesNo(line); ok {
			return yes, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("invalid response %q", strings.TrimSpace(line))
		}
		fmt.Fprintln(out, "Please answer yes or no.")
	}
}
