// Package oracle instantiates the signing loop's random oracle with a real
// keyed hash and replays the two signing variants against it by Monte-Carlo
// sampling. It serves as an independent cross-check of the exhaustive counts
// in package rejection: every signature the simulator accepts must also
// appear in the exhaustively counted distribution.
package oracle

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

const keySize = 32

// Oracle deterministically maps a mask point (y1, y2) to a challenge pair in
// [-beta, beta]^2. Distinct oracles model independently programmed
// random-oracle tables.
type Oracle struct {
	key  [keySize]byte
	beta int
}

// New derives an oracle from a textual label. The same label always yields
// the same oracle.
func New(label string, beta int) *Oracle {
	return &Oracle{
		key:  sha3.Sum256([]byte("dilithium-aborts/oracle|" + label)),
		beta: beta,
	}
}

// Challenges answers the query (y1, y2). Repeated queries at the same point
// return the same pair: the oracle is a function.
func (o *Oracle) Challenges(y1, y2 int) (c1, c2 int) {
	h, err := blake3.NewKeyed(o.key[:])
	if err != nil {
		panic(fmt.Sprintf("oracle: keyed hasher: %v", err))
	}
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(int64(y1)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(int64(y2)))
	h.Write(buf[:])
	digest := h.Sum(nil)

	prng, err := utils.NewKeyedPRNG(digest[:keySize])
	if err != nil {
		panic(fmt.Sprintf("oracle: keyed prng: %v", err))
	}
	c1 = sampleBounded(prng, -o.beta, o.beta)
	c2 = sampleBounded(prng, -o.beta, o.beta)
	return c1, c2
}

// sampleBounded draws one integer uniformly from the inclusive range
// [lo, hi] using threshold rejection on 64-bit words.
func sampleBounded(r io.Reader, lo, hi int) int {
	span := uint64(hi - lo + 1)
	threshold := (^uint64(0) / span) * span
	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			panic(fmt.Sprintf("oracle: prng read: %v", err))
		}
		word := binary.LittleEndian.Uint64(buf)
		if word < threshold {
			return lo + int(word%span)
		}
	}
}
