package diag

import "sort"

var knownKeywords = []string{"end", "from", "to"}

// candidate is a scored keyword suggestion.
type candidate struct {
	word  string
	score int
}

// damerauLevenshtein computes the Damerau-Levenshtein edit distance
// (insertions, deletions, substitutions, and adjacent transpositions)
// between a and b.
func damerauLevenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := d[i-2][j-2] + 1; t < best {
					best = t
				}
			}
			d[i][j] = best
		}
	}
	return d[la][lb]
}

// suggestKeyword finds a keyword to propose for an unrecognized identifier,
// using Damerau-Levenshtein distance with a same-first-letter bonus of 1,
// keeping candidates with a score <= 2. It returns "" unless there is a
// unique best candidate (spec §7).
func suggestKeyword(word string) string {
	if word == "" {
		return ""
	}
	var candidates []candidate
	for _, kw := range knownKeywords {
		score := damerauLevenshtein(word, kw)
		if len(word) > 0 && len(kw) > 0 && word[0] == kw[0] {
			score--
		}
		if score <= 2 {
			candidates = append(candidates, candidate{word: kw, score: score})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score < candidates[j].score })
	if len(candidates) == 1 {
		return candidates[0].word
	}
	if candidates[0].score < candidates[1].score {
		return candidates[0].word
	}
	return ""
}
