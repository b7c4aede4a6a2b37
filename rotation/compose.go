package rotation

// RotationLink is one edge of a resolved orientation chain: the rotation
// matrix carrying the vector across that edge at the query epoch, and the
// edge's own time derivative.
type RotationLink struct {
	DCM    [3][3]float64
	DCMDot [3][3]float64
}

func identity3() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// ComposeChain folds a chain of rotation links (links[0] applied first) into
// the single DCM carrying a vector across the whole chain, and its time
// derivative. With D = D_n...D_1, the derivative follows the product rule
// applied across the chain: Ddot = Ddot_n D_n-1...D_1 + D_n Ddot_n-1
// D_n-2...D_1 + ... + D_n...D_2 Ddot_1, accumulated incrementally by
// prepending one link at a time.
func ComposeChain(links []RotationLink) (dcm, dcmDot [3][3]float64) {
	dcm = identity3()
	for _, l := range links {
		dcm, dcmDot = mul3(l.DCM, dcm), add3m(mul3(l.DCMDot, dcm), mul3(l.DCM, dcmDot))
	}
	return dcm, dcmDot
}
