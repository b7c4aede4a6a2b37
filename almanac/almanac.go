// Package almanac is the top-level query façade: it loads SPK, BPC, PCA,
// and EPA kernels into an immutable Almanac and answers translate/rotate/
// transform and observable queries against the resulting frame graph.
package almanac

import (
	"github.com/sirupsen/logrus"

	"github.com/anise-go/anise/config"
	"github.com/anise-go/anise/dataset"
	"github.com/anise-go/anise/errs"
	"github.com/anise-go/anise/frame"
	"github.com/anise-go/anise/mmapfile"
)

// AberrationCorrection selects how Translate/Transform account for the
// finite speed of light and the observer's own motion.
type AberrationCorrection int

const (
	// None returns the geometric (instantaneous) state: no correction.
	None AberrationCorrection = iota
	// LightTime corrects for light travel time only, using a fixed 3
	// light-time iterations with no convergence test.
	LightTime
	// LightTimeStellar additionally applies stellar aberration (the
	// observer's own velocity) on top of the light-time correction.
	LightTimeStellar
	// Converged is handled exactly like LightTimeStellar: the same fixed 3
	// light-time iterations followed by a single stellar aberration
	// correction. The two corrections are not iterated together, and no
	// convergence test is made.
	Converged
)

const maxAberrationIterations = 3

// kernelHandle keeps a loaded kernel's byte source alive for as long as any
// Almanac built from it exists; Almanac's immutable-construction model
// shares these handles across Load* calls via simple Go reference
// semantics (slices sharing backing arrays), not explicit refcounting.
type kernelHandle struct {
	path   string
	source *mmapfile.Source
	generation int
}

// Almanac is an immutable snapshot of loaded kernels and the frame graph
// they produce. Every Load* method returns a new Almanac; the receiver is
// never mutated, which is what makes a *Almanac safe to share across
// goroutines without locking.
type Almanac struct {
	cfg   config.AlmanacConfig
	spks  []kernelHandle
	bpcs  []kernelHandle
	pca   *dataset.DataSet[dataset.PlanetaryData]
	epa   *dataset.DataSet[dataset.EulerParameter]
	graph *frame.Graph
	generation int
}

// New returns an empty Almanac using the given configuration.
func New(cfg config.AlmanacConfig) *Almanac {
	return &Almanac{cfg: cfg, graph: frame.NewGraph()}
}

// NewDefault returns an empty Almanac using config.DefaultConfig().
func NewDefault() *Almanac {
	return New(config.DefaultConfig())
}

// clone returns a shallow copy of a, sharing every slice and the frame
// graph pointer — the copy-on-write basis for the immutable Load* methods.
func (a *Almanac) clone() *Almanac {
	cp := *a
	return &cp
}

// LoadSPK returns a new Almanac with an additional SPK ephemeris kernel
// loaded. Fails with errs.ReasonKernelCapacityExceeded if the configured
// MaxSPKKernels would be exceeded.
func (a *Almanac) LoadSPK(path string) (*Almanac, error) {
	if len(a.spks) >= a.cfg.MaxSPKKernels {
		return nil, errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}
	src, edges, err := loadTranslationKernel(path, a.generation+1)
	if err != nil {
		return nil, err
	}

	out := a.clone()
	out.generation = a.generation + 1
	out.spks = append(append([]kernelHandle{}, a.spks...), kernelHandle{path: path, source: src, generation: out.generation})
	out.graph = a.graph.WithTranslationEdges(edges...)

	logrus.WithFields(logrus.Fields{
		"kind": "spk", "path": path, "segments": len(edges), "generation": out.generation,
	}).Info("loaded kernel")
	return out, nil
}

// LoadBPC returns a new Almanac with an additional BPC orientation kernel
// loaded.
func (a *Almanac) LoadBPC(path string) (*Almanac, error) {
	if len(a.bpcs) >= a.cfg.MaxBPCKernels {
		return nil, errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}
	src, edges, err := loadOrientationKernel(path, a.generation+1)
	if err != nil {
		return nil, err
	}

	out := a.clone()
	out.generation = a.generation + 1
	out.bpcs = append(append([]kernelHandle{}, a.bpcs...), kernelHandle{path: path, source: src, generation: out.generation})
	out.graph = a.graph.WithRotationEdges(edges...)

	logrus.WithFields(logrus.Fields{
		"kind": "bpc", "path": path, "segments": len(edges), "generation": out.generation,
	}).Info("loaded kernel")
	return out, nil
}

// LoadPCA returns a new Almanac with its planetary-constants dataset
// replaced by the one decoded from path.
func (a *Almanac) LoadPCA(path string) (*Almanac, error) {
	data, closeFn, err := readKernelBytes(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	ds, err := dataset.Decode[dataset.PlanetaryData](data, func() dataset.PlanetaryData { return dataset.PlanetaryData{} })
	if err != nil {
		return nil, err
	}
	if len(ds.Records) > a.cfg.MaxPCAEntries {
		return nil, errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}

	out := a.clone()
	out.pca = ds
	logrus.WithFields(logrus.Fields{"kind": "pca", "path": path, "entries": len(ds.Records)}).Info("loaded dataset")
	return out, nil
}

// LoadEPA returns a new Almanac with its Euler-parameter dataset replaced
// by the one decoded from path, and its rotation edges extended with each
// entry's constant rotation.
func (a *Almanac) LoadEPA(path string) (*Almanac, error) {
	data, closeFn, err := readKernelBytes(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	ds, err := dataset.Decode[dataset.EulerParameter](data, func() dataset.EulerParameter { return dataset.EulerParameter{} })
	if err != nil {
		return nil, err
	}
	if len(ds.Records) > a.cfg.MaxEPAEntries {
		return nil, errs.New(errs.KindAlmanac, errs.ReasonKernelCapacityExceeded)
	}

	out := a.clone()
	out.epa = ds
	out.generation = a.generation + 1
	out.graph = a.graph.WithRotationEdges(constantRotationEdges(ds, out.generation)...)

	logrus.WithFields(logrus.Fields{"kind": "epa", "path": path, "entries": len(ds.Records)}).Info("loaded dataset")
	return out, nil
}

// FrameInfo resolves f's physical shape against the loaded PCA dataset.
func (a *Almanac) FrameInfo(f frame.Frame) (frame.Frame, error) {
	if a.pca == nil {
		return frame.Frame{}, errs.New(errs.KindLookup, errs.ReasonFrameNotInPCA)
	}
	rec, ok := a.pca.ByID(int64(f.EphemerisID))
	if !ok {
		return frame.Frame{}, errs.New(errs.KindLookup, errs.ReasonFrameNotInPCA)
	}
	shape := frame.Shape{}
	if rec.Data.HasGM {
		shape.GM = rec.Data.GM
	}
	if rec.Data.HasShape {
		shape.EquatorRadius = rec.Data.EquatorRadiusKm
		shape.PolarRadius = rec.Data.PolarRadiusKm
	}
	return f.WithShape(shape), nil
}
