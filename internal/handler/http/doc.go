// Package http implements the REST surface of the development backend.
//
// It exposes the generic JSON-store collections the registry client talks
// to (/users, /employee, /activityLogs) plus /version and /metrics. Request
// tracing, access logging, metrics and response compression are handled by
// middleware before requests are delegated to the service layer.
package http
