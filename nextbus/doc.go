// Package nextbus handles fetching and decoding a NextBus-style real-time
// transit XML feed.
//
// It supports three feed commands:
//   - Route Config: routes with their stops, directions and polyline paths
//   - Vehicle Locations: current vehicle positions for a route
//   - Predictions: upcoming-arrival estimates for a stop
//
// The feed is a third-party public service, so every response is treated as
// untrusted input: the transport enforces a body-size ceiling and a
// content-type allow-list, rejects malformed XML with a typed error, and
// every decoded field passes through a sanitizer that degrades to a safe
// default instead of failing.
package nextbus
