// Package prometheus exposes goCell scope metrics in Prometheus text
// exposition format without depending on a Prometheus client library.
package prometheus
