package main

import (
	"github.com/spf13/viper"

	planttribes "github.com/ChunceGuo/PlantTribes"
)

// config collects the postprocess settings from flags and the optional
// config file.
type config struct {
	Transcripts string
	Method      string
	OutDir      string
	Matrix      string
	Stranded    bool
	MinLen      int
	Dedup       bool
	Scaffold    string
	Families    string
	Cutoff      float64
	GapTrim     float64
	NCPU        int
}

// mergeFile fills settings left unset on the command line from a config
// file, so a routine scaffold setup does not need repeating per run.
func (c *config) mergeFile(name string) {
	viper.SetConfigName(name)
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		planttribes.Warn.Printf("config file %s not read: %v\n", name, err)
		return
	}

	if c.Matrix == "" {
		c.Matrix = viper.GetString("estscan.matrix")
	}
	if c.Scaffold == "" {
		c.Scaffold = viper.GetString("targeted.scaffold")
	}
	if c.Families == "" {
		c.Families = viper.GetString("targeted.families")
	}
	if c.MinLen == 0 && viper.IsSet("min_length") {
		c.MinLen = viper.GetInt("min_length")
	}
}
