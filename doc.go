// Package emd decomposes a real-valued time series into a small,
// ordered collection of intrinsic mode functions (IMFs) plus a
// residual, using Empirical Mode Decomposition (EMD), Ensemble EMD
// (EEMD), and Complete Ensemble EMD with Adaptive Noise (CEEMDAN).
//
// Callers build a Config (or start from DefaultConfig()), call
// EMD/EEMD/CEEMDAN, and get back a Result holding the row-major IMF
// matrix plus diagnostics. Errors are typed *Error values wrapping one
// of the package's sentinel ErrorCodes, so both errors.Is against a
// sentinel and a stable numeric ErrorCode extraction (via Is) work.
//
// 🌊 What is go-emd?
//
//	A pure-Go, zero-cgo implementation of the sifting-based EMD family:
//
//	  • EMD     — single-pass sifting, exact reconstruction
//	  • EEMD    — noise-assisted ensemble averaging
//	  • CEEMDAN — adaptive per-mode noise with the noise-residual recurrence
//
// The bivariate/complex-plane variant, BEMD, lives in the sibling
// package github.com/katalvlaran/emd/bemd since it operates over
// complex-valued signals and a set of projection directions rather
// than this package's real-valued ensemble model.
//
// Under the hood, the sifting engine and its supporting numerics live
// in their own subpackages:
//
//	kernel/  — elementwise array primitives (copy/add/sub/scale/addmul)
//	extrema/ — local extrema and zero-crossing detection
//	spline/  — natural cubic spline envelope construction
//	sift/    — the sifting loop shared by every variant
//	emdstat/ — reconstruction and summary-statistics helpers
//
//	go get github.com/katalvlaran/emd
package emd
