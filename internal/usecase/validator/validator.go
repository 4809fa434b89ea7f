package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"business-advisor/internal/domain/entity"
)

const maxLineLen = 200

var labels = []string{"Pros:", "Cons:", "Our verdict:"}

// Source-attribution terms the verdict must never contain, matched on word
// boundaries so "preview" or "verdict" do not trip it.
var forbiddenTerms = regexp.MustCompile(`(?i)\b(yelp|reviews?)\b`)

// Parse checks a raw judge response against the verdict shape rules and
// returns the structured verdict, or a *entity.ValidationError naming the
// first rule it broke. There is no partially valid verdict.
func Parse(raw string) (*entity.Verdict, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	if len(lines) != len(labels) {
		return nil, &entity.ValidationError{
			Reason: fmt.Sprintf("expected exactly %d labeled lines, got %d", len(labels), len(lines)),
		}
	}

	fields := make([]string, len(labels))
	for i, label := range labels {
		if !strings.HasPrefix(lines[i], label) {
			return nil, &entity.ValidationError{
				Reason: fmt.Sprintf("line %d must start with %q", i+1, label),
			}
		}

		content := strings.TrimSpace(strings.TrimPrefix(lines[i], label))
		if content == "" {
			return nil, &entity.ValidationError{Reason: fmt.Sprintf("empty %q line", label)}
		}
		if utf8.RuneCountInString(content) > maxLineLen {
			return nil, &entity.ValidationError{
				Reason: fmt.Sprintf("%q line exceeds %d characters", label, maxLineLen),
			}
		}
		if forbiddenTerms.MatchString(content) {
			return nil, &entity.ValidationError{
				Reason: fmt.Sprintf("%q line names the evidence source", label),
			}
		}
		fields[i] = content
	}

	return &entity.Verdict{
		Pros:           fields[0],
		Cons:           fields[1],
		Recommendation: fields[2],
	}, nil
}
