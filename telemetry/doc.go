// Package telemetry provides the structured logger shared by the
// executor and pipeline façade. A *zap.Logger is always injected
// explicitly by the caller (never a package-level global), passed
// through constructor options rather than reached for as a singleton.
package telemetry
