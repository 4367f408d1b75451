// SPDX-License-Identifier: MIT

package eqsolver

// Test bridge: exposes unexported kernels to eqsolver_test only.

// VerifyTestOnly is verify.
var VerifyTestOnly = verify
