// Package dftrans provides types, interfaces, and helpers for working with the
// DFTrans public transit-information API of the Distrito Federal, Brazil.
//
// # Overview
//
// The dftrans package defines the response types (Route, Stop, Schedule,
// Itinerary, Reference, Station, VehiclePosition, RoutePath, IntegrationArea)
// and one client interface per endpoint category (RoutesClient, StopsClient,
// and so on). A concrete implementation is provided by the dftransclient
// package. Most consumers import dftransclient to construct a client and then
// use the interfaces declared here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/dftrans/pkg/dftrans"
//	  "github.com/fivetwenty-io/dftrans/pkg/dftransclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dftransclient.New(&dftrans.Config{BaseURL: dftrans.DefaultBaseURL})
//	  if err != nil { log.Fatal(err) }
//
//	  route, err := cli.Routes().Get(ctx, "099.1")
//	  if err != nil { log.Fatal(err) }
//	  _ = route
//	}
//
// # Requests
//
// Every operation is a single read-only GET. Path parameters are
// percent-encoded segment by segment, so a search term such as "Asa/Norte"
// travels as "Asa%2FNorte". The client never retries, caches, or paginates;
// callers that need those behaviours wrap the client themselves.
//
// # Errors
//
// Failures are reported as one of three types: TransportError for network
// failures, HTTPStatusError (or NotFoundError for 404) for non-success
// statuses, and DecodeError when the body is not the expected JSON. Helpers
// such as IsNotFound, IsTransport and IsDecode make branching easy.
//
// # Geospatial responses
//
// Geo endpoints return a FeatureCollection whose features carry typed
// properties and a Geometry. Point geometries hold one [longitude, latitude]
// pair; route paths hold a line of pairs.
//
// # Composition
//
// TripPlanner chains stop, route and schedule lookups to find direct routes
// between two stops. Periodic vehicle polling is left to the caller; see the
// vehicles monitor command in cmd/dftrans for an example loop.
package dftrans
