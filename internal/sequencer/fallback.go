package sequencer

import (
	"sort"
	"strings"

	"github.com/zochlan/interview-coach/internal/bank"
	"github.com/zochlan/interview-coach/pkg/model"
)

// Token-Jaccard threshold above which two question texts count as the same
// question.
const duplicateSimilarityThreshold = 0.7

// Relevance-filter tuning for technical questions.
const (
	skillOverlapScore    = 2
	seniorHardScore      = 1
	educationScore       = 1
	relevanceKeepRatio   = 0.7
	relevanceKeepMinimum = 2
)

// fallback picks a catalog question for the resolved category, filtered
// against the conversation and the profile. It never returns an empty
// result: exhausted filters revert to the unfiltered category list.
func (s *Sequencer) fallback(history []model.ChatMessage, profile *model.CVProfile, category model.Category, difficulty model.Difficulty) model.InterviewQuestion {
	all := bank.QuestionsFor(category)

	candidates := s.filterDuplicates(all, history)
	candidates = filterExperience(candidates, profile)

	if category == model.CategoryTechnical && !profile.IsZero() {
		candidates = rankByRelevance(candidates, profile)
	}

	if len(candidates) == 0 {
		candidates = all
	}

	if matching := withDifficulty(candidates, difficulty); len(matching) > 0 {
		candidates = matching
	}

	return candidates[s.rng.Intn(len(candidates))]
}

// filterDuplicates drops catalog entries already asked, by id or by text
// similarity against every prior posed question.
func (s *Sequencer) filterDuplicates(questions []model.InterviewQuestion, history []model.ChatMessage) []model.InterviewQuestion {
	askedIDs := map[string]bool{}
	var askedTexts []string
	for _, m := range history {
		if m.Speaker != model.SpeakerInterviewer || !m.IsInterviewQuestion {
			continue
		}
		if m.QuestionMetadata != nil {
			askedIDs[m.QuestionMetadata.ID] = true
		}
		askedTexts = append(askedTexts, m.Text)
	}

	var out []model.InterviewQuestion
	for _, q := range questions {
		if askedIDs[q.ID] {
			continue
		}
		duplicate := false
		for _, asked := range askedTexts {
			if jaccardSimilarity(q.Text, asked) >= duplicateSimilarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, q)
		}
	}
	return out
}

func filterExperience(questions []model.InterviewQuestion, profile *model.CVProfile) []model.InterviewQuestion {
	if !profile.Inexperienced() {
		return questions
	}
	var out []model.InterviewQuestion
	for _, q := range questions {
		if !q.RequiresExperience {
			out = append(out, q)
		}
	}
	return out
}

// rankByRelevance scores technical questions against the profile and keeps
// the top share by score.
func rankByRelevance(questions []model.InterviewQuestion, profile *model.CVProfile) []model.InterviewQuestion {
	if len(questions) == 0 {
		return questions
	}

	skills := make([]string, len(profile.Skills))
	for i, s := range profile.Skills {
		skills[i] = strings.ToLower(s)
	}
	experience := strings.ToLower(profile.Experience.Text())
	education := strings.ToLower(profile.Education.Text())

	type scored struct {
		q     model.InterviewQuestion
		score int
	}
	ranked := make([]scored, 0, len(questions))
	for _, q := range questions {
		score := 0
		for _, kw := range q.Keywords {
			kwLower := strings.ToLower(kw)
			for _, skill := range skills {
				if strings.Contains(skill, kwLower) || strings.Contains(kwLower, skill) {
					score += skillOverlapScore
					break
				}
			}
			if education != "" && strings.Contains(education, kwLower) {
				score += educationScore
			}
		}
		if q.Difficulty == model.DifficultyHard && strings.Contains(experience, "senior") {
			score += seniorHardScore
		}
		ranked = append(ranked, scored{q, score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	keep := int(float64(len(ranked)) * relevanceKeepRatio)
	if keep < relevanceKeepMinimum {
		keep = relevanceKeepMinimum
	}
	if keep > len(ranked) {
		keep = len(ranked)
	}

	out := make([]model.InterviewQuestion, keep)
	for i := 0; i < keep; i++ {
		out[i] = ranked[i].q
	}
	return out
}

func withDifficulty(questions []model.InterviewQuestion, difficulty model.Difficulty) []model.InterviewQuestion {
	var out []model.InterviewQuestion
	for _, q := range questions {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// jaccardSimilarity is the token-set Jaccard score of two texts after
// lowercasing and punctuation stripping.
func jaccardSimilarity(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for token := range setA {
		if setB[token] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func tokenSet(text string) map[string]bool {
	out := map[string]bool{}
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.TrimFunc(field, func(r rune) bool {
			return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
		})
		if token != "" {
			out[token] = true
		}
	}
	return out
}
