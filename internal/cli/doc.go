// Package cli implements the command-line interface for macro-calendar.
//
// The cli package provides the Cobra-based CLI. The root command runs one
// full update: fetch the BLS and BEA release-schedule feeds, scrape the
// Federal Reserve FOMC calendar page, merge the surviving events under one
// VCALENDAR container, write the output file, and print a run summary
// (text or JSON). The list subcommand reads a generated calendar back and
// prints its upcoming events. It coordinates the fetch, feed, scraper, and
// calendar packages.
package cli
