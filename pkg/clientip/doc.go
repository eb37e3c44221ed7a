// Package clientip resolves the originating client address of an HTTP
// request behind proxies, load balancers, and CDNs.
//
// GetIP consults proxy headers in trust order: CF-Connecting-IP, then
// DO-Connecting-IP, then the leftmost entry of X-Forwarded-For, then
// X-Real-IP. CDN headers come first because the edge sets them itself,
// which makes them harder to spoof than the forwarding chain. When no
// header yields a usable address the connection's RemoteAddr is used.
//
//	ip := clientip.GetIP(r)
//
// Candidate values are parsed with net.ParseIP, so both IPv4 and IPv6 work,
// and every returned address is in canonical form. Unspecified addresses
// (0.0.0.0, ::) are treated as absent rather than returned. GetIP always
// returns something: if even RemoteAddr fails to parse, it is returned raw.
//
// The trust order is fixed. If a deployment sits behind a proxy that sets a
// different header, map it to X-Real-IP at the edge.
package clientip
