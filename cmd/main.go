package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/apoorvam/goterminal"
	"github.com/pkg/errors"
	"github.com/voxkit/ctc-alphabet/src/alphabet"
	"github.com/voxkit/ctc-alphabet/src/common"
	"github.com/voxkit/ctc-alphabet/src/inspect"
)

func main() {
	debugPath := flag.String("debug", "", "write a debug log to this file")
	flag.Parse()
	args := flag.Args()

	if err := installLogger(*debugPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer common.GLogger.Close()

	if len(args) < 1 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "compile":
		if len(args) != 3 {
			printUsage()
			os.Exit(2)
		}
		err = runCompile(args[1], args[2])
	case "inspect":
		if len(args) != 2 {
			printUsage()
			os.Exit(2)
		}
		err = runInspect(args[1])
	case "check":
		if len(args) != 3 {
			printUsage()
			os.Exit(2)
		}
		err = runCheck(args[1], args[2])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		common.GLogger.ConsoleFatal(err)
	}
}

// installLogger sets the global logger, with a debug writer when a debug
// log path was given. Logger.Close closes the debug file.
func installLogger(debugPath string) error {
	if debugPath == "" {
		common.GLogger = common.NewLogger(os.Stdout, nil)
		return nil
	}
	debugFile, err := os.Create(debugPath)
	if err != nil {
		return errors.Wrapf(err, "cannot create debug log \"%s\"", debugPath)
	}
	common.GLogger = common.NewLogger(os.Stdout, debugFile)
	return nil
}

func printUsage() {
	fmt.Println("CTC Alphabet Tool")
	fmt.Println("=================")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ctc-alphabet [-debug <file>] compile <alphabet.txt> <out.bin>   Build and serialize an alphabet")
	fmt.Println("  ctc-alphabet [-debug <file>] inspect <alphabet.bin>             List the entries of a serialized alphabet")
	fmt.Println("  ctc-alphabet [-debug <file>] check <alphabet-file> <text>       Test whether text is encodable")
}

func runCompile(textPath string, binPath string) error {
	writer := goterminal.New(os.Stdout)
	fmt.Fprintf(writer, "Compiling alphabet \"%s\"...\n", textPath)
	writer.Print()

	a, err := alphabet.NewTableAlphabetFromFile(textPath)
	writer.Clear()
	if err != nil {
		return err
	}

	if err := os.WriteFile(binPath, a.Serialize(), 0644); err != nil {
		return errors.Wrapf(err, "cannot write serialized alphabet \"%s\"", binPath)
	}
	common.GLogger.ConsolePrintf("Wrote %d entries to \"%s\"", a.Size(), binPath)
	if a.SpaceLabel() == alphabet.SpaceLabelNotFound {
		common.GLogger.ConsolePrintf("No space label (alphabet has no whitespace entry)")
	} else {
		common.GLogger.ConsolePrintf("Space label: %d", a.SpaceLabel())
	}
	return nil
}

func runInspect(binPath string) error {
	writer := goterminal.New(os.Stdout)
	fmt.Fprintf(writer, "Reading serialized alphabet \"%s\"...\n", binPath)
	writer.Print()

	data, err := os.ReadFile(binPath)
	if err != nil {
		writer.Clear()
		return errors.Wrapf(err, "cannot read serialized alphabet \"%s\"", binPath)
	}
	a, err := alphabet.DeserializeAlphabet(data)
	writer.Clear()
	if err != nil {
		return err
	}
	common.GLogger.ConsolePrintf("%d entries, space label %d", a.Size(), a.SpaceLabel())
	for _, label := range a.Labels() {
		common.GLogger.ConsolePrintf("%5d  %s", label, inspect.DescribeEntry(a.DecodeSingle(label)))
	}
	return nil
}

func runCheck(alphabetPath string, text string) error {
	a, err := loadAlphabet(alphabetPath)
	if err != nil {
		return err
	}
	if !a.CanEncode(text) {
		scanner := alphabet.NewCodepointScanner(text)
		for scanner.Scan() {
			if !a.CanEncodeSingle(scanner.Text()) {
				common.GLogger.ConsolePrintf("Not encodable: %s is not in the alphabet", inspect.DescribeEntry(scanner.Text()))
			}
		}
		return nil
	}
	common.GLogger.ConsolePrintf("Encodable, labels: %v", a.Encode(text))
	return nil
}

// loadAlphabet accepts either form of alphabet file: it first tries the
// serialized format, then falls back to parsing a text definition.
func loadAlphabet(path string) (*alphabet.TableAlphabet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read alphabet \"%s\"", path)
	}
	if a, err := alphabet.DeserializeAlphabet(data); err == nil {
		return a, nil
	}
	return alphabet.NewTableAlphabetFromReader(bytes.NewReader(data))
}
