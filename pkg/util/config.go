package util

import (
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AddConfigPath(".")

	viper.SetDefault("navdata_path", "./data/navdata")
	viper.SetDefault("graph_path", "./data/graph.bin")
	viper.SetDefault("info_path", "./data/info.bin")

	err := viper.ReadInConfig()
	if err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			// defaults + flags are enough to run
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func NavdataPath() string {
	return viper.GetString("navdata_path")
}

func GraphPath() string {
	return viper.GetString("graph_path")
}

func InfoPath() string {
	return viper.GetString("info_path")
}
