package image

import (
	"fmt"
	"image"

	"github.com/corona10/goimagehash"
)

// PerceptualDistance is the Hamming distance between the perception hashes of a and b. A
// distance of zero means a reverse image search would most likely treat them as the same.
func PerceptualDistance(a, b image.Image) (int, error) {
	hashA, err := goimagehash.PerceptionHash(a)
	if err != nil {
		return 0, fmt.Errorf("hashing original image: %w", err)
	}
	hashB, err := goimagehash.PerceptionHash(b)
	if err != nil {
		return 0, fmt.Errorf("hashing processed image: %w", err)
	}
	return hashA.Distance(hashB)
}
