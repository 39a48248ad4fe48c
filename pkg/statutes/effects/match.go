package effects

import fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

// ClosestEffect maps a generated effect label onto its nearest vocabulary
// term by partial-ratio string similarity. The highest-scoring term wins;
// ties resolve to the term encountered first in the vocabulary. This is
// an offline utility for inspecting out-of-vocabulary labels; Decode does
// not call it.
func ClosestEffect(label string, vocab Vocabulary) (match string, score int) {
	score = -1
	for _, term := range vocab {
		if s := fuzzy.PartialRatio(label, term); s > score {
			match, score = term, s
		}
	}
	return match, score
}
