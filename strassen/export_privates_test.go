// SPDX-License-Identifier: MIT

package strassen

// Test bridge: panic messages and internal helpers for strassen_test.
const (
	PanicThresholdInvalid_TestOnly  = panicThresholdInvalid
	PanicMaxWorkersInvalid_TestOnly = panicMaxWorkersInvalid
	PanicKernelInvalid_TestOnly     = panicKernelInvalid
	PanicLoggerNil_TestOnly         = panicLoggerNil
)

// NextPow2_TestOnly exposes nextPow2.
var NextPow2_TestOnly = nextPow2
