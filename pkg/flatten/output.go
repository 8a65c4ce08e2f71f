package flatten

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	headerRule = strings.Repeat("=", 50)
	fileRule   = strings.Repeat("-", 20)
)

// WriteDocument renders the combined output: a project header, the directory
// tree, then each file's content under a FILE banner. Files must already be
// sorted by relative path. Every file body ends with a newline; one is
// appended when the content lacks it.
func WriteDocument(w io.Writer, projectName string, files []CollectedFile) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Project: %s\n", projectName)
	fmt.Fprintln(bw, headerRule)
	fmt.Fprintln(bw, "PROJECT STRUCTURE:")

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	bw.WriteString(RenderTree(paths))
	fmt.Fprintf(bw, "\n%s\n\n", headerRule)

	for _, f := range files {
		fmt.Fprintf(bw, "FILE: %s\n", f.Path)
		fmt.Fprintln(bw, fileRule)
		bw.WriteString(f.Content)
		if !strings.HasSuffix(f.Content, "\n") {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "\n%s\n\n", headerRule)
	}

	return bw.Flush()
}

// EstimateTokens approximates the LLM token count of a document from its
// byte size using the common bytes/4 heuristic.
func EstimateTokens(sizeBytes int64) int64 {
	return sizeBytes / 4
}

// groupDigits formats n with thousands separators for the summary line.
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
