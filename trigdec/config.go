package main

import (
	"encoding/json"
	"fmt"
	"os"

	trigdet "github.com/hallc-daq/trigdec/pkg"
)

func LoadConfiguration(filename string) (trigdet.Configuration, error) {
	var config trigdet.Configuration

	// Set default values
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.Skip = 0
	config.Detector = "PTRIG"
	config.Prefix = "p_ptrig"
	config.Discard = true
	config.NoDB = false
	config.Host = "hallcdb.jlab.org"
	config.User = "hcreader"
	config.Passwd = "readonly"
	config.DBName = "hallc_params"

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config trigdet.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("Detector: %s", config.Detector), "config")
	logger.Info(fmt.Sprintf("Prefix: %s", config.Prefix), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Map file: %s", config.MapFile), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Discard: %t", config.Discard), "config")
}
