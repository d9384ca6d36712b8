// Package analyzer extracts lightweight signals from free-text answers:
// keyword themes, sentiment, confidence, and STAR structural completeness.
// Everything here is a pure function of the input text.
package analyzer

import (
	"regexp"
	"strings"

	"github.com/zochlan/interview-coach/pkg/model"
)

type keywordRule struct {
	label   string
	pattern *regexp.Regexp
}

// Ordered rule table; a label is included when its pattern matches anywhere
// in the text, and multiple labels may fire for one answer.
var keywordRules = []keywordRule{
	{"problem-solving", regexp.MustCompile(`(?i)problem[\s-]?solv|solution|resolved?\b|figure[d]? out`)},
	{"teamwork", regexp.MustCompile(`(?i)\bteam\b|collaborat|coworker|colleague|work(ed|ing)? together`)},
	{"communication", regexp.MustCompile(`(?i)communicat|present(ed|ation)|explain|articulate`)},
	{"leadership", regexp.MustCompile(`(?i)\blead(er|ership|ing)?\b|\bled\b|manag(ed|ing)|mentor|delegat`)},
	{"adaptability", regexp.MustCompile(`(?i)adapt|flexib|adjust|pivot|changing (requirements|priorities)`)},
	{"learning", regexp.MustCompile(`(?i)\blearn(ed|ing)?\b|studied|course|certification|upskill`)},
	{"technical", regexp.MustCompile(`(?i)technical|algorithm|architecture|database|infrastructure`)},
	{"coding", regexp.MustCompile(`(?i)\bcod(e|ed|ing)\b|programm|software|develop(ed|ment)`)},
	{"testing", regexp.MustCompile(`(?i)\btest(s|ed|ing)?\b|\bqa\b|quality assurance`)},
	{"debugging", regexp.MustCompile(`(?i)debug|troubleshoot|root caus|fixed (a|the) bug`)},
	{"project", regexp.MustCompile(`(?i)\bproject\b|deliver(ed|able)|milestone`)},
	{"deadline", regexp.MustCompile(`(?i)deadline|time[\s-]?line|due date|on time|time pressure`)},
	{"prioritization", regexp.MustCompile(`(?i)priorit|organiz|schedul|plann(ed|ing)`)},
	{"conflict-resolution", regexp.MustCompile(`(?i)conflict|disagree|dispute|tension|difficult conversation`)},
}

var (
	positivePattern = regexp.MustCompile(`(?i)\b(enjoy(ed)?|love[d]?|great|success(ful(ly)?)?|accomplish(ed|ment)?|proud|excellent|happy|excit(ed|ing)|rewarding)\b`)
	negativePattern = regexp.MustCompile(`(?i)\b(difficult|struggl(e|ed|ing)?|fail(ed|ure)?|frustrat(ed|ing)|stress(ed|ful)?|unfortunately|overwhelm(ed|ing))\b`)

	highConfidencePattern = regexp.MustCompile(`(?i)\b(definitely|certainly|confident(ly)?|absolutely|without a doubt|i'?m sure|i am sure|no doubt)\b`)
	hedgingPattern        = regexp.MustCompile(`(?i)\b(maybe|perhaps|not (really )?sure|i guess|i think|i suppose|possibly|might|kind of|sort of)\b`)
)

// STAR structure groups; each is tested independently.
var starPatterns = map[string]*regexp.Regexp{
	"situation": regexp.MustCompile(`(?i)\b(situation|context|background|at the time|when i was|while i was|we (had|were)|there was)\b`),
	"task":      regexp.MustCompile(`(?i)\b(task|goal|objective|responsib|needed to|had to|my (job|role) was|was asked to|assigned)\b`),
	"action":    regexp.MustCompile(`(?i)\b(i (decided|implemented|created|organized|led|took|built|wrote|set up)|so i\b|my approach|steps i took|first,? i)\b`),
	"result":    regexp.MustCompile(`(?i)\b(result|outcome|impact|achieved|improved|increased|reduced|in the end|ultimately|as a consequence|we (shipped|delivered))\b`),
}

// Analyze extracts keywords, sentiment, confidence, and completeness from a
// single answer. Pure and idempotent; results are never cached.
func Analyze(text string) model.ResponseAnalysis {
	return model.ResponseAnalysis{
		Keywords:     extractKeywords(text),
		Sentiment:    detectSentiment(text),
		Confidence:   detectConfidence(text),
		Completeness: detectCompleteness(text),
	}
}

func extractKeywords(text string) []string {
	keywords := []string{}
	for _, rule := range keywordRules {
		if rule.pattern.MatchString(text) {
			keywords = append(keywords, rule.label)
		}
	}
	return keywords
}

// detectSentiment matches the positive and negative patterns independently.
// Ties and double-misses resolve to neutral, not to the stronger signal.
func detectSentiment(text string) model.Sentiment {
	pos := positivePattern.MatchString(text)
	neg := negativePattern.MatchString(text)
	switch {
	case pos && !neg:
		return model.SentimentPositive
	case neg && !pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// detectConfidence gives the high-confidence check precedence when both fire.
func detectConfidence(text string) model.Confidence {
	if highConfidencePattern.MatchString(text) {
		return model.ConfidenceHigh
	}
	if hedgingPattern.MatchString(text) {
		return model.ConfidenceLow
	}
	return model.ConfidenceMedium
}

func detectCompleteness(text string) model.Completeness {
	matched := 0
	for _, p := range starPatterns {
		if p.MatchString(text) {
			matched++
		}
	}
	switch matched {
	case len(starPatterns):
		return model.CompletenessComplete
	case 0:
		return model.CompletenessIncomplete
	default:
		return model.CompletenessPartial
	}
}

// Theme vocabulary used to enrich generation requests; a subset of the
// keyword rules focused on what a follow-up question can latch onto.
var themeRules = []keywordRule{
	{"achievement", regexp.MustCompile(`(?i)\b(achieve[d]?|success|accomplish(ed)?|proud|impact)\b`)},
	{"challenge", regexp.MustCompile(`(?i)\b(challeng(e|ing)|difficult|problem|obstacle|struggl(e|ed))\b`)},
	{"teamwork", regexp.MustCompile(`(?i)\b(team|colleague|collaborat\w*|group|work(ed)? together)\b`)},
	{"leadership", regexp.MustCompile(`(?i)\b(lead(er|ership)?|led|manag(ed|er)|mentor(ed)?)\b`)},
	{"technical", regexp.MustCompile(`(?i)\b(technical|code|software|system|algorithm|database)\b`)},
	{"communication", regexp.MustCompile(`(?i)\b(communicat\w*|present(ed|ation)?|explain(ed)?|discuss(ed)?)\b`)},
}

const elaborationWordLimit = 30

// AdaptiveContext describes the latest answer for the remote generator so
// it can tailor tone and follow-up. It never affects local fallback logic.
type AdaptiveContext struct {
	Themes           []string `json:"themes,omitempty"`
	NeedsElaboration bool     `json:"needs_elaboration,omitempty"`
}

// AdaptiveContextFor detects themes in the latest candidate answer and
// flags answers short enough to deserve an elaboration nudge.
func AdaptiveContextFor(latestAnswer string) AdaptiveContext {
	ctx := AdaptiveContext{}
	for _, rule := range themeRules {
		if rule.pattern.MatchString(latestAnswer) {
			ctx.Themes = append(ctx.Themes, rule.label)
		}
	}
	ctx.NeedsElaboration = len(strings.Fields(latestAnswer)) < elaborationWordLimit
	return ctx
}
