package nlp

// Word-level sentiment scores. Polarity in [-1, 1], subjectivity in [0, 1].
type wordScore struct {
	polarity     float64
	subjectivity float64
}

var lexicon = map[string]wordScore{
	// positive
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"amazing":     {0.6, 0.9},
	"awesome":     {1.0, 1.0},
	"fantastic":   {0.9, 0.9},
	"wonderful":   {1.0, 1.0},
	"best":        {1.0, 0.3},
	"better":      {0.5, 0.5},
	"love":        {0.5, 0.6},
	"loved":       {0.7, 0.8},
	"like":        {0.3, 0.4},
	"happy":       {0.8, 1.0},
	"glad":        {0.5, 1.0},
	"excited":     {0.34, 1.0},
	"exciting":    {0.35, 0.9},
	"impressive":  {1.0, 1.0},
	"beautiful":   {0.85, 1.0},
	"brilliant":   {0.9, 0.9},
	"perfect":     {1.0, 1.0},
	"win":         {0.5, 0.4},
	"winning":     {0.5, 0.4},
	"success":     {0.6, 0.5},
	"successful":  {0.65, 0.6},
	"useful":      {0.3, 0.3},
	"helpful":     {0.4, 0.4},
	"promising":   {0.4, 0.6},
	"strong":      {0.4, 0.5},
	"fast":        {0.2, 0.35},
	"easy":        {0.43, 0.83},
	"free":        {0.4, 0.8},
	"recommend":   {0.4, 0.5},
	"thanks":      {0.3, 0.4},
	"thank":       {0.3, 0.4},
	"bullish":     {0.5, 0.8},
	"gains":       {0.4, 0.5},

	// negative
	"bad":          {-0.7, 0.67},
	"terrible":     {-1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"horrible":     {-1.0, 1.0},
	"worst":        {-1.0, 0.3},
	"worse":        {-0.5, 0.5},
	"hate":         {-0.8, 0.9},
	"hated":        {-0.9, 0.9},
	"sad":          {-0.5, 1.0},
	"angry":        {-0.5, 1.0},
	"disappointed": {-0.75, 0.75},
	"disappointing": {-0.6, 0.7},
	"broken":       {-0.4, 0.4},
	"fail":         {-0.5, 0.5},
	"failed":       {-0.6, 0.5},
	"failure":      {-0.6, 0.5},
	"lose":         {-0.4, 0.4},
	"losing":       {-0.4, 0.4},
	"loss":         {-0.4, 0.4},
	"slow":         {-0.3, 0.4},
	"expensive":    {-0.3, 0.5},
	"scam":         {-0.8, 0.9},
	"useless":      {-0.5, 0.6},
	"wrong":        {-0.5, 0.5},
	"problem":      {-0.3, 0.3},
	"problems":     {-0.3, 0.3},
	"bug":          {-0.3, 0.3},
	"bugs":         {-0.3, 0.3},
	"crash":        {-0.5, 0.4},
	"weak":         {-0.4, 0.5},
	"bearish":      {-0.5, 0.8},
	"ugly":         {-0.7, 1.0},
	"boring":       {-0.6, 0.8},
	"annoying":     {-0.6, 0.8},

	// subjective but neutral in polarity
	"think":    {0, 0.6},
	"feel":     {0, 0.7},
	"believe":  {0, 0.7},
	"opinion":  {0, 0.9},
	"probably": {0, 0.5},
	"maybe":    {0, 0.5},
	"seems":    {0, 0.6},
	"hope":     {0, 0.7},
}

// Negations flip the polarity of the following sentiment word.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"cannot":  true,
	"cant":    true,
	"dont":    true,
	"doesnt":  true,
	"didnt":   true,
	"isnt":    true,
	"wasnt":   true,
	"wont":    true,
	"n't":     true,
}

// Intensifiers scale the polarity of the following sentiment word.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"so":         1.2,
	"totally":    1.3,
	"absolutely": 1.4,
	"quite":      1.1,
	"slightly":   0.7,
	"somewhat":   0.8,
	"barely":     0.6,
}

var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "than": true, "so": true, "of": true, "at": true,
	"by": true, "for": true, "with": true, "about": true, "against": true,
	"between": true, "into": true, "through": true, "during": true,
	"before": true, "after": true, "above": true, "below": true, "to": true,
	"from": true, "up": true, "down": true, "in": true, "out": true,
	"on": true, "off": true, "over": true, "under": true, "again": true,
	"further": true, "once": true, "here": true, "there": true, "when": true,
	"where": true, "why": true, "how": true, "all": true, "any": true,
	"both": true, "each": true, "few": true, "more": true, "most": true,
	"other": true, "some": true, "such": true, "only": true, "own": true,
	"same": true, "too": true, "can": true, "will": true, "just": true,
	"should": true, "now": true, "is": true, "am": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "having": true, "do": true,
	"does": true, "did": true, "doing": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"me": true, "my": true, "we": true, "our": true, "you": true,
	"your": true, "he": true, "him": true, "his": true, "she": true,
	"her": true, "they": true, "them": true, "their": true, "what": true,
	"which": true, "who": true, "whom": true, "as": true, "until": true,
	"while": true, "because": true, "rt": true, "via": true, "amp": true,
}
