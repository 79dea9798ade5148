// Package config loads the logging setup from a YAML file and the
// environment and assembles a ready-to-use logger from it.
//
// The output template travels as an ordinary configuration string; the
// LINELOG_OUTPUT_FORMAT environment variable overrides the file value,
// which is the usual way containerized deployments retarget log
// formatting without a redeploy. A malformed template is not a
// configuration error; it compiles to visible literal text so that
// logging keeps working while the mistake is being fixed.
package config
