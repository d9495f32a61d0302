package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlRe     = regexp.MustCompile(`https?://\S+`)
	mentionRe = regexp.MustCompile(`@\w+`)
	hashtagRe = regexp.MustCompile(`#(\w+)`)
)

// LexiconAnalyzer scores text against built-in polarity/subjectivity
// lexicons. It keeps no state between calls.
type LexiconAnalyzer struct{}

// NewLexiconAnalyzer creates a lexicon-based analyzer
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{}
}

// Sentiment analyzes one text. URLs, mentions and hashtags are stripped
// before scoring so handles and tags never influence polarity.
func (a *LexiconAnalyzer) Sentiment(text string) Sentiment {
	clean := urlRe.ReplaceAllString(text, "")
	clean = mentionRe.ReplaceAllString(clean, "")
	clean = hashtagRe.ReplaceAllString(clean, "")

	tokens := tokenize(clean)

	var polaritySum, subjectivitySum float64
	hits := 0
	negate := false
	boost := 1.0

	for _, tok := range tokens {
		if negations[tok] {
			negate = true
			continue
		}
		if m, ok := intensifiers[tok]; ok {
			boost = m
			continue
		}

		if score, ok := lexicon[tok]; ok {
			p := score.polarity * boost
			if negate {
				// Negation flips and dampens rather than mirrors:
				// "not great" is mildly negative, not the opposite of great.
				p = -0.5 * p
			}
			polaritySum += p
			subjectivitySum += score.subjectivity
			hits++
		}
		negate = false
		boost = 1.0
	}

	if hits == 0 {
		return Sentiment{Label: LabelNeutral, Text: text}
	}

	polarity := clamp(polaritySum/float64(hits), -1, 1)
	subjectivity := clamp(subjectivitySum/float64(hits), 0, 1)

	return Sentiment{
		Label:        LabelFor(polarity),
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Text:         text,
	}
}

// Topics extracts up to maxTopics topics. Hashtags are taken first in their
// original order; keyword phrases from the remaining text fill the rest,
// skipping anything already covered by a hashtag.
func (a *LexiconAnalyzer) Topics(text string, maxTopics int) []string {
	if maxTopics <= 0 {
		maxTopics = 5
	}

	var hashtags []string
	seen := make(map[string]bool)
	for _, m := range hashtagRe.FindAllStringSubmatch(text, -1) {
		hashtags = append(hashtags, m[1])
		seen[strings.ToLower(m[1])] = true
	}

	clean := urlRe.ReplaceAllString(text, "")
	clean = mentionRe.ReplaceAllString(clean, "")
	clean = strings.ReplaceAll(clean, "#", "")

	topics := make([]string, 0, maxTopics)
	topics = append(topics, hashtags...)

	for _, phrase := range keywordPhrases(clean) {
		if len(topics) >= maxTopics {
			break
		}
		if seen[phrase] {
			continue
		}
		seen[phrase] = true
		topics = append(topics, phrase)
	}

	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

// keywordPhrases collects consecutive runs of non-stopword tokens as
// candidate topics, at most three words per phrase, in text order.
func keywordPhrases(text string) []string {
	var phrases []string
	var run []string

	flush := func() {
		if len(run) == 0 {
			return
		}
		phrases = append(phrases, strings.Join(run, " "))
		run = run[:0]
	}

	for _, tok := range tokenize(text) {
		if stopwords[tok] || negations[tok] || len(tok) < 3 {
			flush()
			continue
		}
		if _, ok := intensifiers[tok]; ok {
			flush()
			continue
		}
		if len(run) == 3 {
			flush()
		}
		run = append(run, tok)
	}
	flush()

	return phrases
}

// tokenize lowercases and splits on anything that is not a letter, digit or
// apostrophe, then drops the apostrophes ("don't" -> "dont").
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ReplaceAll(f, "'", "")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
