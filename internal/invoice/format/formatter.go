// Package format expands invoice number templates.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// Number formats a display number from a template, the invoice issue date
// and the allocated sequence. Supported tokens: {YYYY} {YY} {MM} {DD}
// {SEQ} and {SEQn} with n the zero-padded width, so FCT-{YYYY}-{SEQ6}
// gives FCT-2025-000042.
func Number(template string, issueDate time.Time, seq int) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number format is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issueDate.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issueDate.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issueDate.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issueDate.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.Itoa(seq))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in invoice number format: %s", out)
	}
	return out, nil
}
