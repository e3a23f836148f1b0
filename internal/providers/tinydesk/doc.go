// Package tinydesk implements a providers.Scraper for NPR Tiny Desk concert
// pages. It fetches a page, applies a fixed selector schema to the parsed
// document and builds a providers.Concert. Archive listing pages are parsed
// into providers.Entry values for the archive runner.
package tinydesk
