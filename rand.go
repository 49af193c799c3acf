package pokegpt

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// CreateRandomSeed builds a PCG seed from the OS entropy source. The engine
// itself never rolls dice on its own; callers that want variance seed an rng
// here and pass it in.
func CreateRandomSeed() rand.PCG {
	var seedBytes [16]byte
	if _, err := cryptoRand.Read(seedBytes[:]); err != nil {
		panic(err)
	}

	return *rand.NewPCG(binary.LittleEndian.Uint64(seedBytes[0:8]), binary.LittleEndian.Uint64(seedBytes[8:]))
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}
