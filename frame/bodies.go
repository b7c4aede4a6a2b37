package frame

// NAIF body/frame ID constants used by SPK, PCK, and BPC kernels.
const (
	SSB               = 0 // Solar System Barycenter
	MercuryBarycenter = 1
	VenusBarycenter   = 2
	EarthMoonBary     = 3 // Earth-Moon Barycenter
	MarsBarycenter    = 4
	JupiterBarycenter = 5
	SaturnBarycenter  = 6
	UranusBarycenter  = 7
	NeptuneBarycenter = 8
	PlutoBarycenter   = 9
	Sun               = 10
	Moon              = 301
	Earth             = 399
	Mercury           = 199
	Venus             = 299

	// J2000 is the inertial orientation ID most SPK/PCK segments are
	// expressed against.
	J2000 = 1
	// ICRF is the orientation ID of the International Celestial Reference
	// Frame, treated as coincident with J2000 at the frame-bias level.
	ICRF = 17
	// ITRF93 is the Earth body-fixed orientation ID produced by BPC
	// high-precision Earth orientation segments.
	ITRF93 = 3000
)
