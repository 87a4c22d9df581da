package common

import "runtime"

type Chunk struct {
	Begin uint
	End   uint
}

func GetProcNum(maxGoRoutines uint) uint {
	if maxGoRoutines == 0 {
		return uint(runtime.NumCPU())
	}

	return maxGoRoutines
}

// Chunks splits [0, n) into at most procs contiguous ranges whose sizes differ by at most one.
func Chunks(n uint, procs uint) []Chunk {
	if n == 0 {
		return nil
	}
	if procs == 0 || n < procs {
		procs = n
	}

	chunks := make([]Chunk, 0, procs)
	bs := n / procs
	rem := n % procs
	bi := uint(0)
	for i := uint(0); i < procs; i++ {
		ei := bi + bs
		if i < rem {
			ei += 1
		}

		chunks = append(chunks, Chunk{Begin: bi, End: ei})
		bi = ei
	}

	return chunks
}
