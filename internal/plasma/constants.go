package plasma

// Physical constants (SI, CODATA 2018).
const (
	SpeedOfLight       = 299792458.0       // m/s
	ElementaryCharge   = 1.602176634e-19   // C
	ElectronMass       = 9.1093837015e-31  // kg
	AtomicMassUnit     = 1.66053906660e-27 // kg
	VacuumPermittivity = 8.8541878128e-12  // F/m
	BoltzmannConstant  = 1.380649e-23      // J/K
	ReducedPlanck      = 1.054571817e-34   // J*s
)
