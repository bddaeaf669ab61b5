package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/ptree/internal/cli"
	"github.com/temirov/ptree/internal/utils"
)

// main is the entry point for the ptree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(os.Getenv(utils.LogLevelEnvironmentVariable))
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	zap.ReplaceGlobals(loggerInstance)
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
