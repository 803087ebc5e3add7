// Package errors defines the error taxonomy shared by every nova-go
// component. Kinds are sentinel values, not types: wrap one with
// fmt.Errorf("...: %w", err) to attach call-site detail and match it
// later with errors.Is.
package errors

import "errors"

// Is reports whether err matches target anywhere in its chain.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target's type.
func As(err error, target any) bool { return errors.As(err, target) }

// New returns an error that formats as the given text, for building
// ad-hoc sentinels outside this taxonomy (tests, call sites).
func New(text string) error { return errors.New(text) }

var (
	// ErrShapeMismatch reports a dimension mismatch between a vector
	// and the matrix/constraint system it is evaluated against.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrNotSatisfied reports that a relaxed R1CS/CCS instance and
	// witness do not satisfy the relation.
	ErrNotSatisfied = errors.New("relation not satisfied")

	// ErrCommitmentVerificationFail reports a rejected commitment
	// opening (Pedersen dot-product or KZG pairing check).
	ErrCommitmentVerificationFail = errors.New("commitment verification failed")

	// ErrSNARKSetupFail reports a failure while generating Groth16
	// proving/verifying keys for the decider circuit.
	ErrSNARKSetupFail = errors.New("snark setup failed")

	// ErrSNARKVerificationFail reports a rejected Groth16 proof.
	ErrSNARKVerificationFail = errors.New("snark verification failed")

	// ErrIVCVerificationFail reports a rejected IVC proof (folded
	// instance fails the final relaxed-relation or hash check).
	ErrIVCVerificationFail = errors.New("ivc verification failed")

	// ErrNotEnoughSteps reports a decider/verify call made before the
	// minimum number of folding steps has been reached.
	ErrNotEnoughSteps = errors.New("not enough steps")

	// ErrMaxStep reports that the step counter i would overflow its
	// field representation.
	ErrMaxStep = errors.New("max step exceeded")

	// ErrBlindingNotZero reports a non-zero Pedersen blinding factor
	// supplied while the commitment is configured non-hiding.
	ErrBlindingNotZero = errors.New("blinding factor must be zero in non-hiding mode")

	// ErrHidingNotSupported reports a request for KZG hiding, which
	// this implementation does not support (see SPEC_FULL.md open
	// question 3).
	ErrHidingNotSupported = errors.New("hiding mode not supported")

	// ErrPolynomialTooLarge reports a polynomial whose degree is at
	// or beyond the trusted setup's power bound.
	ErrPolynomialTooLarge = errors.New("polynomial degree exceeds setup size")

	// ErrSumCheckProveFail reports a failure while constructing a
	// HyperNova sum-check proof.
	ErrSumCheckProveFail = errors.New("sum-check proving failed")

	// ErrSumCheckVerifyFail reports a rejected sum-check proof.
	ErrSumCheckVerifyFail = errors.New("sum-check verification failed")

	// ErrConversionError reports a failed R1CS<->CCS (or other
	// representation) conversion.
	ErrConversionError = errors.New("conversion error")

	// ErrSerializationError reports a failure encoding/decoding the
	// canonical wire format of a proof, instance, or witness.
	ErrSerializationError = errors.New("serialization error")

	// ErrMissingValue reports an operation invoked before a required
	// field (key, setup artifact, witness component) was populated.
	ErrMissingValue = errors.New("missing value")

	// ErrNotPowerOfTwo reports a size argument that a component
	// requires to be a power of two (e.g. FFT-friendly domains).
	ErrNotPowerOfTwo = errors.New("value is not a power of two")

	// ErrOutOfBounds reports an index or degree outside its valid
	// range.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrOther is the catch-all for conditions not covered by a more
	// specific sentinel above.
	ErrOther = errors.New("other error")
)
