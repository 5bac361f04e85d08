package elliptic

import "github.com/MohamedElashri/ostap/math/backend"

// Library-backed reference flavors. These delegate to the configured
// special-function backend and exist to cross-validate the native
// duplication-theorem evaluators. The backend follows the m = k²
// parameter convention; the k-argument wrappers translate.

// RFRef is the library-backed R_F(x,y,z).
func RFRef(x, y, z float64) float64 { return backend.Default().EllipticRF(x, y, z) }

// RDRef is the library-backed R_D(x,y,z).
func RDRef(x, y, z float64) float64 { return backend.Default().EllipticRD(x, y, z) }

// KRef is the library-backed complete integral K(k).
func KRef(k float64) float64 { return backend.Default().CompleteK(k * k) }

// ERef is the library-backed complete integral E(k).
func ERef(k float64) float64 { return backend.Default().CompleteE(k * k) }

// FRef is the library-backed incomplete integral F(φ,k) for |φ| ≤ π/2.
func FRef(phi, k float64) float64 { return backend.Default().EllipticF(phi, k*k) }

// EIncRef is the library-backed incomplete integral E(φ,k) for |φ| ≤ π/2.
func EIncRef(phi, k float64) float64 { return backend.Default().EllipticE(phi, k*k) }
