// Package geomath is a dense linear-algebra and rotation toolkit for
// design and imaging applications: coordinate transforms, quaternion
// rotation handling, and least-squares fitting.
//
// What geomath provides:
//
//   - Fixed value types: Vec2/Vec3/Vec4, Mat3/Mat4 — stack-resident,
//     row-major, exact-equality value semantics.
//   - Dynamic types: VecN/MatN — heap-backed, resizable, deep-copied on
//     Clone; the fixed types cast to and from them explicitly.
//   - Quaternion: axis/angle rotations with branch-stable conversion to
//     and from rotation matrices (no trigonometric calls on the way out).
//   - Generic matrix procedures: diagonal/row/column get-set with offset
//     conventions, row/column swaps — over any Mat implementation.
//   - Direct solvers: tridiagonal (Thomas), Gauss-Jordan with full
//     pivoting, Gaussian elimination with partial pivoting, and linear
//     least squares via normal equations.
//   - Dense factorizations: LU, QR, RQ, Cholesky, symmetric
//     eigendecomposition and SVD, backed by gonum's native LAPACK.
//
// Storage is row-major everywhere in the public API. Every operation is
// a pure (or explicitly in-place) transformation over value types: there
// is no global state, no goroutines, no I/O. Concurrent use is safe
// across distinct instances; a single instance must not be mutated
// concurrently.
//
// Failures are deterministic and fail-fast. Data-dependent conditions
// (singular systems, indefinite matrices, degenerate vectors, shape
// mismatches) are reported through sentinel errors matched with
// errors.Is; invalid indices handed to the low-level swap procedures are
// programmer errors and panic.
//
//	go get github.com/valtherin/geomath
package geomath
