package consts

// Solver and validation thresholds.
const (
	PivotEpsilon     = 1e-8  // pivot magnitude below this is treated as zero
	CurrentEpsilon   = 1e-12 // currents below this count as zero
	KCLTolerance     = 1e-3  // max node current residual (A)
	KVLTolerance     = 1e-2  // max loop voltage mismatch (V)
	OvercurrentLimit = 10.0  // safety ceiling for resistors and bulbs (A)
	SparseThreshold  = 64    // node count at which auto solver switches to sparse
)

// Default component properties, used when the property bag has no value.
const (
	BatteryInternalResistance = 1e-3 // Ohm
	DefaultResistance         = 10.0 // Ohm, resistor and bulb
	ContactResistance         = 1e-4 // Ohm, wire, closed switch, fuse
	AmmeterResistance         = 1e-3 // Ohm
	VoltmeterResistance       = 1e6  // Ohm, near-open so it draws negligible current
	InductorResistance        = 1e-3 // Ohm, DC limit of an ideal inductor winding
	FuseMaxCurrent            = 5.0  // A
	BulbMaxPower              = 60.0 // W, full brightness
)
