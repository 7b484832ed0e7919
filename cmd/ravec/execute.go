package main

import (
	"fmt"
	"os"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"

	"github.com/ravelang/ravec/common"
	"github.com/ravelang/ravec/config"
	"github.com/ravelang/ravec/report"
	"github.com/ravelang/ravec/types"
)

// Execute is the entry point for the ravec CLI.
func Execute() {
	cli := olive.NewCLI("ravec", "ravec is a tool for exercising the Rave type core", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the diagnostic log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "resolve and report the structs declared in a module's fixtures", true)
	checkCmd.AddPrimaryArg("module-path", "the path to the module directory", true)

	cli.AddSubcommand("version", "print the ravec version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.Fatal(err.Error())
	}

	report.Init(logLevelFor(result.Arguments["loglevel"].(string)))

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		modulePath, _ := subResult.PrimaryArg()
		execCheckCommand(modulePath)
	case "version":
		pterm.Info.Println("ravec version " + common.RaveVersion)
	}
}

func logLevelFor(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

// execCheckCommand loads the module at modulePath, concurrently discovers
// its .ravetypes fixtures, registers every struct and alias they declare
// into a fresh types.Context, and prints the struct resolver's verdict on
// each registered struct.
func execCheckCommand(modulePath string) {
	mod, err := config.Load(modulePath)
	if err != nil {
		report.Fatal("failed to load module: %s", err.Error())
	}

	pterm.Info.Printfln("checking module `%s` (target %s)", mod.Name, mod.Target)

	ctx, names, err := loadFixtures(mod.Root)
	if err != nil {
		report.Fatal("failed to load fixtures: %s", err.Error())
	}

	if len(names) == 0 {
		pterm.Warning.Println("no struct declarations found in any .ravetypes fixture")
		return
	}

	tableData := [][]string{{"struct", "size (bits)", "fields", "simple"}}
	for _, name := range names {
		st := &types.Struct{Name: name}
		tableData = append(tableData, []string{
			name,
			fmt.Sprint(ctx.StructSize(st)),
			fmt.Sprint(ctx.StructFieldCount(st)),
			fmt.Sprint(ctx.StructIsSimple(st)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		report.Fatal("failed to render report: %s", err.Error())
	}
}
