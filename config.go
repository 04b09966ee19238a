package emd

// Config collects the tunables shared by EMD, EEMD, and CEEMDAN,
// following the teacher's Options/DefaultOptions/Validate triad
// (see dtw.Options).
//
// Fields:
//
//	EnsembleSize  - number of noise realisations averaged (EMD requires 1).
//	NoiseStrength - noise amplitude as a multiple of the input's stddev.
//	SNumber       - S-number stopping criterion; 0 disables it.
//	NumSiftings   - fixed sifting iteration cap; 0 disables it.
//	RNGSeed       - base seed; member i uses RNGSeed+i.
type Config struct {
	EnsembleSize  int
	NoiseStrength float64
	SNumber       int
	NumSiftings   int
	RNGSeed       int64
}

// DefaultConfig returns a Config valid for plain EMD: a single
// realisation, no noise, S-number stopping with a generous iteration
// cap as a backstop.
//
//	EnsembleSize:  1
//	NoiseStrength: 0.0
//	SNumber:       4
//	NumSiftings:   50
//	RNGSeed:       0
func DefaultConfig() Config {
	return Config{
		EnsembleSize:  1,
		NoiseStrength: 0,
		SNumber:       4,
		NumSiftings:   50,
		RNGSeed:       0,
	}
}

// Validate enforces the five misuse rules: EnsembleSize == 0,
// NoiseStrength < 0, EnsembleSize == 1 with NoiseStrength > 0,
// EnsembleSize > 1 with NoiseStrength == 0, and SNumber == 0 with
// NumSiftings == 0. Rules are checked in this fixed order so the first
// violated rule's error is always the one returned.
func (c Config) Validate() error {
	if err := validateEnsembleSize(c.EnsembleSize); err != nil {
		return err
	}
	if err := validateNoiseStrength(c.NoiseStrength); err != nil {
		return err
	}
	if err := validateNoiseEnsemblePairing(c.EnsembleSize, c.NoiseStrength); err != nil {
		return err
	}
	if err := validateStoppingCriterion(c.SNumber, c.NumSiftings); err != nil {
		return err
	}

	return nil
}

func validateEnsembleSize(size int) error {
	if size == 0 {
		return newError(InvalidEnsembleSize, ErrInvalidEnsembleSize, nil)
	}
	if size < 0 {
		return newError(InvalidEnsembleSize, ErrInvalidEnsembleSize, nil)
	}

	return nil
}

func validateNoiseStrength(strength float64) error {
	if strength < 0 {
		return newError(InvalidNoiseStrength, ErrInvalidNoiseStrength, nil)
	}

	return nil
}

func validateNoiseEnsemblePairing(size int, strength float64) error {
	if size == 1 && strength > 0 {
		return newError(NoiseAddedToEMD, ErrNoiseAddedToEMD, nil)
	}
	if size > 1 && strength == 0 {
		return newError(NoNoiseAddedToEEMD, ErrNoNoiseAddedToEEMD, nil)
	}

	return nil
}

func validateStoppingCriterion(sNumber, numSiftings int) error {
	if sNumber == 0 && numSiftings == 0 {
		return newError(NoConvergencePossible, ErrNoConvergencePossible, nil)
	}

	return nil
}
