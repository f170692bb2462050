package domain

import (
	"sort"

	m "github.com/KillAllTheHippies/Solidity-Signature-Decoder/internal/model"
)

// FindCollisions groups the selector-bearing records of a scan (functions,
// errors, getters) by digest and reports every digest shared by two or more
// distinct canonical signatures. Require records are excluded: their digests
// identify diagnostic strings, not callable entry points. Output is sorted
// by digest so reports stay reproducible.
func FindCollisions(files []m.FileReport) []m.Collision {
	byDigest := make(map[string]map[string]bool)

	collect := func(records []m.Record) {
		for _, record := range records {
			set := byDigest[record.Signature.Digest]
			if set == nil {
				set = make(map[string]bool)
				byDigest[record.Signature.Digest] = set
			}

			set[record.Signature.Canonical] = true
		}
	}

	for _, file := range files {
		collect(file.Functions)
		collect(file.Errors)
		collect(file.Getters)
	}

	var collisions []m.Collision

	for digest, canonicals := range byDigest {
		if len(canonicals) < 2 {
			continue
		}

		texts := make([]string, 0, len(canonicals))
		for text := range canonicals {
			texts = append(texts, text)
		}

		sort.Strings(texts)
		collisions = append(collisions, m.Collision{Digest: digest, Canonicals: texts})
	}

	sort.Slice(collisions, func(i, j int) bool {
		return collisions[i].Digest < collisions[j].Digest
	})

	return collisions
}
