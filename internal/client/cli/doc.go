// Package cli is the terminal front end of the blog client. It wires the
// interactive command loop to the feature state containers and renders the
// states they publish.
package cli
