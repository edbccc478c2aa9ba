// Package web serves the browser form and JSON API for character
// conversion.
//
// Routes:
//
//	GET  /             conversion form
//	POST /convert      form submission, renders the results page
//	GET  /api/options  sensory option lists
//	POST /api/convert  JSON conversion
//	GET  /healthz      liveness probe
package web
