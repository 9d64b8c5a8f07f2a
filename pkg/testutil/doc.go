// Package testutil provides test doubles shared by bindle's test suites,
// chiefly PathResolver fakes for exercising the selector's fail-fast
// behavior without a real filesystem.
package testutil
