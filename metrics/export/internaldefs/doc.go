// Package internaldefs holds the shared metric name and help-text table used
// by the Prometheus and OpenTelemetry exporters. It exists so both exporters
// emit identical series names; it is not part of the public goCell API.
package internaldefs
