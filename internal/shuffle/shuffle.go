// Package shuffle provides deterministic, seed-driven shuffling of project
// queues. The same seed and input length always produce the same permutation,
// on any platform, so the browsing order survives process restarts.
package shuffle

import (
	"math"

	"github.com/robby/hackswipe/internal/domain"
)

// Seed is the fixed seed used for queue ordering. Keeping it constant means
// the queue order is stable across sessions and resets unless the corpus
// itself changes.
const Seed = 42

// videoSeedOffset separates the non-video partition's shuffle from the
// video partition's so the two orderings are independent.
const videoSeedOffset = 1000

// random maps an integer to a value in [0, 1). It is stateless: the output
// depends only on n, never on ambient randomness or time.
func random(n int) float64 {
	x := math.Sin(float64(n)) * 10000
	return x - math.Floor(x)
}

// Shuffle returns a permutation of items fully determined by seed and
// len(items). The input slice is not modified.
func Shuffle[T any](items []T, seed int) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(math.Floor(random(seed+i) * float64(i+1)))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Arrange builds the session queue from a corpus: projects with a resolvable
// demo video are shuffled with seed and placed first, the rest are shuffled
// with seed+1000 and appended. Video-bearing entries lead so users see richer
// cards early, and each partition's order is unaffected by size changes in
// the other.
func Arrange(corpus []domain.Project, seed int) []domain.Project {
	var withVideo, withoutVideo []domain.Project
	for _, p := range corpus {
		if p.HasVideo() {
			withVideo = append(withVideo, p)
		} else {
			withoutVideo = append(withoutVideo, p)
		}
	}

	queue := Shuffle(withVideo, seed)
	return append(queue, Shuffle(withoutVideo, seed+videoSeedOffset)...)
}
