// Package web serves the portfolio site: page modules composed behind the
// shared middleware chain, fingerprinted static assets, the web app manifest
// and the readiness gate that shows a loader until the site is prepared.
package web
