// Package busfeed is a client for a NextBus-style real-time transit feed.
//
// The nextbus subpackage fetches and decodes the upstream XML (route
// configuration, vehicle locations, arrival predictions) with defensive
// parsing of the untrusted responses. This package layers the pieces a
// consuming view needs on top: aggregation of predictions across every
// route serving a stop, grouping of stops by physical location, and a
// cancellable polling loop for the live views.
package busfeed
