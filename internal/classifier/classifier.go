// Package classifier decides whether a transaction description is injury
// related and which injured-list event it represents. Matching is purely
// textual: ordered regular expressions for the specific event shapes, plus a
// substring keyword list for generic mentions.
package classifier

import (
	"regexp"
	"strings"

	"iltracker/internal/logging"
	"iltracker/internal/models"
)

// Event patterns, all case-insensitive. The historical "disabled list"
// wording is accepted everywhere "injured list" is.
var (
	placedILPattern    = regexp.MustCompile(`(?i)\bplaced\b.*?\bon the\b.*?\b(?:injured|disabled) list\b`)
	transferILPattern  = regexp.MustCompile(`(?i)\btransferred\b.*?\b(?:injured|disabled) list\b.*?\bto the\b.*?\b(?:injured|disabled) list\b`)
	activatedILPattern = regexp.MustCompile(`(?i)\b(?:activated|reinstated)\b.*?\bfrom the\b.*?\b(?:injured|disabled) list\b`)
	rehabPattern       = regexp.MustCompile(`(?i)\brehab assignment\b`)
	dayBucketPattern   = regexp.MustCompile(`(?i)\b(7|10|15|60)-day (?:injured|disabled) list\b`)
)

// Classification is the outcome of classifying one description.
type Classification struct {
	IsInjuryRelated              bool
	EventType                    string
	IsILPlacement                bool
	IsILActivation               bool
	IsILTransfer                 bool
	IsRehabAssignment            bool
	IsCovidIL                    bool
	ILDaysBucket                 string
	CountAsNewInjuryRegistration bool
}

// Classifier matches transaction descriptions against the injury patterns
// and keyword list.
type Classifier struct {
	keywords []string
	logger   logging.Logger
}

// NewClassifier creates a Classifier with the built-in keyword list. A nil
// logger falls back to the default logger.
func NewClassifier(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{
		keywords: defaultKeywords(),
		logger:   logger,
	}
}

// defaultKeywords returns the built-in generic injury keyword list.
func defaultKeywords() []string {
	return []string{
		"injured list",
		"disabled list",
		"concussion injured list",
		"covid-19 injured list",
		"rehab assignment",
	}
}

// SetLogger replaces the classifier's logger.
func (c *Classifier) SetLogger(logger logging.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetKeywords replaces the generic keyword list, typically with entries from
// a keyword configuration file. An empty list keeps the current keywords.
func (c *Classifier) SetKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}
	c.keywords = lowered
	c.logger.Debug("Injury keywords overridden",
		logging.Field{Key: logging.FieldCount, Value: len(lowered)})
}

// Keywords returns the active generic keyword list.
func (c *Classifier) Keywords() []string {
	out := make([]string, len(c.keywords))
	copy(out, c.keywords)
	return out
}

// Classify inspects a description and returns its injury classification.
// When several event patterns match the same text, the most specific one
// wins: transfer, then placement, then activation, then rehab, then a
// generic keyword mention. The individual Is* flags still report every
// pattern that matched.
func (c *Classifier) Classify(description string) Classification {
	lowered := strings.ToLower(description)

	placed := placedILPattern.MatchString(description)
	transfer := transferILPattern.MatchString(description)
	activated := activatedILPattern.MatchString(description)
	rehab := rehabPattern.MatchString(description)
	covid := strings.Contains(lowered, "covid-19 injured list")

	isInjury := placed || transfer || activated || rehab
	if !isInjury {
		for _, keyword := range c.keywords {
			if strings.Contains(lowered, keyword) {
				isInjury = true
				break
			}
		}
	}

	var eventType string
	switch {
	case transfer:
		eventType = models.EventTypeILTransfer
	case placed:
		eventType = models.EventTypeILPlacement
	case activated:
		eventType = models.EventTypeILActivation
	case rehab:
		eventType = models.EventTypeRehab
	case isInjury:
		eventType = models.EventTypeInjuryOther
	default:
		eventType = models.EventTypeNonInjury
	}

	return Classification{
		IsInjuryRelated:              isInjury,
		EventType:                    eventType,
		IsILPlacement:                placed,
		IsILActivation:               activated,
		IsILTransfer:                 transfer,
		IsRehabAssignment:            rehab,
		IsCovidIL:                    covid,
		ILDaysBucket:                 c.daysBucket(description, lowered, covid),
		CountAsNewInjuryRegistration: placed && !transfer,
	}
}

// daysBucket derives the injured-list duration bucket: an explicit N-day
// mention wins, then the covid list, then the concussion list.
func (c *Classifier) daysBucket(description, lowered string, covid bool) string {
	if matches := dayBucketPattern.FindStringSubmatch(description); matches != nil {
		return matches[1] + "-day"
	}
	if covid {
		return models.BucketCovid
	}
	if strings.Contains(lowered, "concussion injured list") || strings.Contains(lowered, "concussion disabled list") {
		return models.BucketConcussion
	}
	return ""
}
