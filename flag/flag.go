// Package flag provides getters for viper-bound global options.
package flag

import (
	"github.com/spf13/viper"
)

// DryRun returns value of the global option --dryrun.
func DryRun() bool {
	return viper.GetBool("dryrun")
}

// Quiet returns count of the global option --quiet.
func Quiet() int {
	return viper.GetInt("quiet")
}

// Verbose returns count of the global option --verbose.
func Verbose() int {
	return viper.GetInt("verbose")
}
