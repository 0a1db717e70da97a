// Package downloader streams a remote file to disk, following redirects
// itself so that the number of hops is bounded and every hop is visible.
package downloader
