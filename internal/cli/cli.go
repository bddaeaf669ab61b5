// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ptree/internal/config"
	"github.com/temirov/ptree/internal/services/clipboard"
	"github.com/temirov/ptree/internal/tree"
	"github.com/temirov/ptree/internal/utils"
)

const (
	// StructureHeader precedes the rendered tree.
	StructureHeader = "Project structure:\n\n"

	ignoreFlagName        = "ignore"
	ignoreFlagShorthand   = "i"
	defaultIgnoreFlagName = "default-ignore"
	copyFlagName          = "copy"
	configFlagName        = "config"
	globalFlagName        = "global"
	forceFlagName         = "force"
	versionFlagName       = "version"
	defaultPath           = "."
	versionFormat         = "ptree version: %s\n"
	rootUse               = "ptree [path]"
	rootShortDescription  = "print the project structure as a tree"
	rootLongDescription   = `ptree prints every file and directory below a path, one per line,
indented by depth and sorted by name. Entries named node_modules, .git, .next
and __pycache__ are skipped together with everything below them.
Use --ignore to skip more names and --default-ignore=false to include entries with those names.`
	rootUsageExample = `  # Print the current directory
  ptree

  # Skip build output as well and copy the result
  ptree -i dist -i build --copy ./service`
	initUse                   = "init"
	initShortDescription      = "write a default configuration file"
	initLongDescription       = `Write .ptree.yaml with the default settings into the working directory, or config.yaml into ~/.ptree with --global.`
	ignoreFlagDescription     = "additional entry name to skip (repeatable)"
	defaultIgnoreDescription  = "skip node_modules, .git, .next and __pycache__"
	copyFlagDescription       = "copy the printed structure to the clipboard"
	configFlagDescription     = "path to a configuration file"
	versionFlagDescription    = "display application version"
	globalFlagDescription     = "write the configuration into the global configuration directory"
	forceFlagDescription      = "overwrite an existing configuration file"
	initCompletedFormat       = "Configuration written to %s\n"
	workingDirectoryErrorFmt  = "unable to determine working directory: %w"
	invalidIgnoreNamesFormat  = "invalid ignore names: %w"
	writeHeaderErrorFormat    = "write header: %w"
	copyToClipboardErrorFmt   = "copy structure to clipboard: %w"
	debugIgnoreSetMessage     = "resolved ignore set"
	debugCopiedMessage        = "copied structure to clipboard"
	ignoreNamesLogField       = "names"
	startPathLogField         = "path"
	copiedBytesLogField       = "bytes"
)

// Dependencies are the collaborators the commands operate on.
type Dependencies struct {
	FileSystem afero.Fs
	Copier     clipboard.Copier
	Logger     *zap.Logger
}

// Execute runs the ptree application with the process arguments.
func Execute() error {
	rootCommand := NewRootCommand(Dependencies{
		FileSystem: afero.NewOsFs(),
		Copier:     clipboard.NewService(),
		Logger:     zap.L(),
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// rootOptions stores the values of the root command flags.
type rootOptions struct {
	ignoreNames      []string
	useDefaultIgnore bool
	copyOutput       bool
	configPath       string
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	var options rootOptions
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionFormat, utils.GetApplicationVersion())
				return nil
			}
			startPath := defaultPath
			if len(arguments) == 1 {
				startPath = arguments[0]
			}
			return runPrintStructure(command, dependencies, options, startPath)
		},
	}
	rootCommand.Flags().StringArrayVarP(&options.ignoreNames, ignoreFlagName, ignoreFlagShorthand, nil, ignoreFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &options.useDefaultIgnore, defaultIgnoreFlagName, true, defaultIgnoreDescription)
	registerBooleanFlag(rootCommand.Flags(), &options.copyOutput, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runPrintStructure resolves the effective settings and prints the header followed by the tree.
func runPrintStructure(command *cobra.Command, dependencies Dependencies, options rootOptions, startPath string) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFmt, workingDirectoryError)
	}
	configuration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if configurationError != nil {
		return configurationError
	}

	useDefaultIgnore := configuration.DefaultIgnoreEnabled()
	if command.Flags().Changed(defaultIgnoreFlagName) {
		useDefaultIgnore = options.useDefaultIgnore
	}
	copyOutput := configuration.CopyEnabled()
	if command.Flags().Changed(copyFlagName) {
		copyOutput = options.copyOutput
	}

	requestedNames := append(append([]string{}, configuration.Ignore...), options.ignoreNames...)
	ignoreSet, parseError := tree.ParseIgnoreNames(requestedNames)
	if parseError != nil {
		return fmt.Errorf(invalidIgnoreNamesFormat, parseError)
	}
	if useDefaultIgnore {
		ignoreSet = tree.DefaultIgnoreSet().Union(ignoreSet)
	}
	dependencies.Logger.Debug(debugIgnoreSetMessage,
		zap.String(startPathLogField, startPath),
		zap.Strings(ignoreNamesLogField, ignoreSet.Names()),
	)

	output := command.OutOrStdout()
	var captured bytes.Buffer
	if copyOutput {
		output = io.MultiWriter(output, &captured)
	}
	if _, writeError := io.WriteString(output, StructureHeader); writeError != nil {
		return fmt.Errorf(writeHeaderErrorFormat, writeError)
	}
	printer := tree.NewPrinter(dependencies.FileSystem, output, dependencies.Logger)
	if printError := printer.PrintTree(startPath, ignoreSet); printError != nil {
		return printError
	}

	if !copyOutput {
		return nil
	}
	if copyError := dependencies.Copier.Copy(captured.String()); copyError != nil {
		return fmt.Errorf(copyToClipboardErrorFmt, copyError)
	}
	dependencies.Logger.Debug(debugCopiedMessage, zap.Int(copiedBytesLogField, captured.Len()))
	return nil
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initCompletedFormat, destinationPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &globalTarget, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}
