// Package runconfig loads the TOML configuration file an enumeration
// run is driven from: timeout, delay log path, output directory, and the
// hard cap on emitted DAGs.
package runconfig
