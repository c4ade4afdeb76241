// Package api serves the geometry operations over HTTP.
//
// # Routes
//
// All geometry routes accept and return JSON:
//
//	POST /v1/project   tiles -> screen coordinates
//	POST /v1/locate    screen coordinates -> tiles
//	POST /v1/bounds    diagram bounding box
//	POST /v1/fit       fit-to-screen view
//	POST /v1/subset    every tile of a rectangle
//	POST /v1/render    scene snapshot in the requested formats
//	GET  /healthz      liveness and build information
//
// Requests carry an optional view; omitted fields take the pipeline
// defaults (zoom 1, viewport 1280x720). A zoom that is present is validated
// as given, so "zoom": 0 is an INVALID_ZOOM error.
//
// # Errors
//
// Failures are returned as {"error": {"code": ..., "message": ...}}. Input
// errors map to 400, NOT_FOUND to 404, UNSUPPORTED to 422 and everything else
// to 500.
//
// # Usage
//
//	runner := pipeline.NewRunner(memCache, nil, logger)
//	srv := api.NewServer(runner, logger)
//	http.ListenAndServe(":8080", srv.Handler())
package api
