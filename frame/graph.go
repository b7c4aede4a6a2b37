package frame

import (
	"sort"

	"github.com/anise-go/anise/errs"
)

// TranslationEvaluator evaluates a translation segment's position and
// velocity (km, km/s) at a TDB-seconds-past-J2000 epoch. Implementations
// live in interp (Chebyshev/Hermite segment types); frame only stores the
// function pointer to avoid importing interp's segment types directly.
type TranslationEvaluator func(tdbSec float64) (pos, vel [3]float64, ok bool)

// RotationEvaluator evaluates a rotation (and its time derivative) at a
// TDB-seconds-past-J2000 epoch, returning a row-major 3x3 matrix.
type RotationEvaluator func(tdbSec float64) (dcm, dcmDot [3][3]float64, ok bool)

// TranslationEdge is one segment of the translation graph: covers [target,
// center] over a validity interval, contributed by a specific loaded kernel.
type TranslationEdge struct {
	Target, Center int32
	StartSec, EndSec float64
	Generation     int // load order; higher wins ties across kernels
	Eval           TranslationEvaluator
}

// RotationEdge is one edge of the orientation graph, either a constant (EPA)
// rotation or a time-varying (BPC) one.
type RotationEdge struct {
	FromOrient, ToOrient int32
	StartSec, EndSec     float64
	Generation           int
	Eval                 RotationEvaluator
}

// Graph is the union of every translation and rotation edge contributed by
// every kernel loaded into an Almanac. Graphs are immutable once built:
// loading a new kernel produces a new Graph via WithTranslationEdges /
// WithRotationEdges, never a mutation of the original.
type Graph struct {
	translation []TranslationEdge
	rotation    []RotationEdge
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph { return &Graph{} }

// WithTranslationEdges returns a new Graph with additional translation edges
// appended. Edge order is preserved (first-seen-within-kernel tie-break);
// the caller is responsible for setting Generation so that edges from a
// later-loaded kernel carry a larger Generation than earlier ones.
func (g *Graph) WithTranslationEdges(edges ...TranslationEdge) *Graph {
	out := &Graph{
		translation: append(append([]TranslationEdge{}, g.translation...), edges...),
		rotation:    append([]RotationEdge{}, g.rotation...),
	}
	return out
}

// WithRotationEdges returns a new Graph with additional rotation edges
// appended, under the same tie-break contract as WithTranslationEdges.
func (g *Graph) WithRotationEdges(edges ...RotationEdge) *Graph {
	out := &Graph{
		translation: append([]TranslationEdge{}, g.translation...),
		rotation:    append(append([]RotationEdge{}, g.rotation...), edges...),
	}
	return out
}

// pickBestTranslation and pickBestRotation choose, among candidate edges covering the same node pair and
// epoch, the one from the most recently loaded kernel (highest Generation);
// ties (same generation, i.e. same kernel) keep the first-seen one, which is
// already guaranteed by iterating candidates in append order and only
// replacing on strictly-greater generation.
func pickBestTranslation(cands []TranslationEdge) TranslationEdge {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Generation > best.Generation {
			best = c
		}
	}
	return best
}

func pickBestRotation(cands []RotationEdge) RotationEdge {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Generation > best.Generation {
			best = c
		}
	}
	return best
}

// edgeHop is one step of a resolved translation path: Forward is true when
// walked in the Target->Center direction (subtract the evaluated vector),
// false when walked Center->Target (add it).
type edgeHop struct {
	Edge    TranslationEdge
	Forward bool
}

// TranslationPath finds a chain of translation edges connecting from and to
// through their nearest common ancestor, by walking both nodes' ancestor
// chains toward their ultimate center (typically the solar system
// barycenter) and stopping at the first shared node. Mirrors the
// center-of-body lookup used by SPK chain-to-SSB composition, generalized
// to a two-sided walk so paths between two non-root bodies are found too.
func (g *Graph) TranslationPath(from, to int32, atTDBSec float64) ([]edgeHop, error) {
	if from == to {
		return nil, nil
	}
	fromChain, err := g.ancestorChain(from, atTDBSec)
	if err != nil {
		return nil, err
	}
	toChain, err := g.ancestorChain(to, atTDBSec)
	if err != nil {
		return nil, err
	}

	toIndex := map[int32]int{}
	for i, h := range toChain {
		toIndex[h.Edge.Center] = i
	}
	toIndex[to] = len(toChain)

	fromVisited := map[int32]int{from: 0}
	for i, h := range fromChain {
		fromVisited[h.Edge.Center] = i + 1
	}

	var ancestor int32 = -1
	if _, ok := toIndex[from]; ok {
		ancestor = from
	} else {
		for node := range fromVisited {
			if _, ok := toIndex[node]; ok {
				ancestor = node
				break
			}
		}
	}
	if ancestor == -1 {
		return nil, errs.New(errs.KindLookup, errs.ReasonNoInterpolationData).WithPath(to, from, atTDBSec/86400.0+2451545.0)
	}

	var path []edgeHop
	for _, h := range fromChain {
		path = append(path, h)
		if h.Edge.Center == ancestor {
			break
		}
	}
	var toPart []edgeHop
	for _, h := range toChain {
		toPart = append(toPart, h)
		if h.Edge.Center == ancestor {
			break
		}
	}
	for i := len(toPart) - 1; i >= 0; i-- {
		h := toPart[i]
		path = append(path, edgeHop{Edge: h.Edge, Forward: !h.Forward})
	}
	return path, nil
}

// ancestorChain walks target->center->center->... until no further edge is
// found, returning the hops in walk order (Forward=true meaning the edge
// was traversed target->center, i.e. its evaluated vector should be
// subtracted when summing target's position relative to the chain's end).
func (g *Graph) ancestorChain(target int32, atTDBSec float64) ([]edgeHop, error) {
	var chain []edgeHop
	node := target
	visited := map[int32]bool{node: true}
	for i := 0; i < 64; i++ {
		edge, ok := g.findTranslationEdge(node, atTDBSec)
		if !ok {
			return chain, nil
		}
		chain = append(chain, edgeHop{Edge: edge, Forward: true})
		node = edge.Center
		if visited[node] {
			return nil, errs.New(errs.KindLookup, "cycle detected in translation graph")
		}
		visited[node] = true
	}
	return nil, errs.New(errs.KindLookup, "translation chain exceeded maximum depth")
}

func (g *Graph) findTranslationEdge(target int32, atTDBSec float64) (TranslationEdge, bool) {
	var cands []TranslationEdge
	for _, e := range g.translation {
		if e.Target == target && atTDBSec >= e.StartSec && atTDBSec <= e.EndSec {
			cands = append(cands, e)
		}
	}
	if len(cands) == 0 {
		return TranslationEdge{}, false
	}
	return pickBestTranslation(cands), true
}

// OrientationPath finds a chain of rotation edges connecting from and to
// orientation IDs, with the same common-ancestor walk as TranslationPath.
func (g *Graph) OrientationPath(from, to int32, atTDBSec float64) ([]RotationEdge, error) {
	if from == to {
		return nil, nil
	}
	type hop struct {
		edge    RotationEdge
		forward bool
	}
	chainOf := func(start int32) ([]hop, error) {
		var chain []hop
		node := start
		visited := map[int32]bool{node: true}
		for i := 0; i < 64; i++ {
			var cands []RotationEdge
			for _, e := range g.rotation {
				if e.FromOrient == node && atTDBSec >= e.StartSec && atTDBSec <= e.EndSec {
					cands = append(cands, e)
				}
			}
			if len(cands) == 0 {
				return chain, nil
			}
			best := pickBestRotation(cands)
			chain = append(chain, hop{edge: best, forward: true})
			node = best.ToOrient
			if visited[node] {
				return nil, errs.New(errs.KindLookup, "cycle detected in orientation graph")
			}
			visited[node] = true
		}
		return nil, errs.New(errs.KindLookup, "orientation chain exceeded maximum depth")
	}

	fromChain, err := chainOf(from)
	if err != nil {
		return nil, err
	}
	toChain, err := chainOf(to)
	if err != nil {
		return nil, err
	}

	toIndex := map[int32]bool{to: true}
	for _, h := range toChain {
		toIndex[h.edge.ToOrient] = true
	}

	var ancestor int32 = -1
	if toIndex[from] {
		ancestor = from
	} else {
		for _, h := range fromChain {
			if toIndex[h.edge.ToOrient] {
				ancestor = h.edge.ToOrient
				break
			}
		}
	}
	if ancestor == -1 {
		return nil, errs.New(errs.KindLookup, errs.ReasonFrameNotInPCA)
	}

	var out []RotationEdge
	for _, h := range fromChain {
		out = append(out, h.edge)
		if h.edge.ToOrient == ancestor {
			break
		}
	}
	var toPart []RotationEdge
	for _, h := range toChain {
		toPart = append(toPart, h.edge)
		if h.edge.ToOrient == ancestor {
			break
		}
	}
	for i := len(toPart) - 1; i >= 0; i-- {
		out = append(out, invertRotationEdge(toPart[i]))
	}
	return out, nil
}

func invertRotationEdge(e RotationEdge) RotationEdge {
	eval := e.Eval
	return RotationEdge{
		FromOrient: e.ToOrient,
		ToOrient:   e.FromOrient,
		StartSec:   e.StartSec,
		EndSec:     e.EndSec,
		Generation: e.Generation,
		Eval: func(t float64) (dcm, dcmDot [3][3]float64, ok bool) {
			d, dd, ok := eval(t)
			if !ok {
				return dcm, dcmDot, false
			}
			return transpose3(d), transpose3(dd), true
		},
	}
}

func transpose3(m [3][3]float64) [3][3]float64 {
	var out [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// SortTranslationEdges sorts edges in place by ascending start time.
func SortTranslationEdges(edges []TranslationEdge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].StartSec < edges[j].StartSec })
}
