// Package dftransclient provides the primary entry point for constructing a
// DFTrans API client that implements the dftrans.Client interface.
//
// It layers configuration and HTTP transport on top of the resource
// interfaces and types defined in the dftrans package. Most applications
// should import dftransclient to build a client, then use the returned
// dftrans.Client to access resource-specific clients, for example Routes(),
// Stops(), Schedules(), etc.
//
// Quick start
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
//
//	  // The public service:
//	  cli, err := dftransclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a full configuration, e.g. pointing at a mirror:
//	  cli, err = dftransclient.New(&dftrans.Config{
//	    BaseURL:     "mirror.example.com",
//	    HTTPTimeout: 10 * time.Second,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  route, err := cli.Routes().Get(ctx, "099.1")
//	  if dftrans.IsNotFound(err) { ... }
//	  _ = route
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint and
// NewDefault that wrap New with the appropriate configuration.
package dftransclient
